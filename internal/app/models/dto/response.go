package dto

// Response is the envelope shared by every endpoint.
type Response struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a success envelope with a message.
func Success(message string) Response {
	return Response{OK: true, Message: message}
}

// WithData builds a success envelope carrying data.
func WithData(data interface{}) Response {
	return Response{OK: true, Data: data}
}

// Fail builds a failure envelope with a message.
func Fail(message string) Response {
	return Response{OK: false, Message: message}
}

// LoginResponse carries the session descriptor: a bare identifier
// pair with no signing or expiry, consumed by the frontend to gate
// page access.
type LoginResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	UserID  int64  `json:"idUsuario"`
	Role    string `json:"rol"`
}

// CreatedCourseResponse extends the envelope with the new course id.
type CreatedCourseResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	CourseID int64  `json:"id_curso"`
}

// CreatedSubjectResponse extends the envelope with the new subject id.
type CreatedSubjectResponse struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message"`
	SubjectID int64  `json:"id_materia"`
}

// ReportCardResponse extends the envelope with the resolved year.
type ReportCardResponse struct {
	OK   bool        `json:"ok"`
	Year int         `json:"anio"`
	Data interface{} `json:"data"`
}
