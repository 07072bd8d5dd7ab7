package dto

// CourseRequest is the course create/rename payload.
type CourseRequest struct {
	Name string `json:"nombreCurso"`
}

// SubjectRequest is the subject create/rename payload.
type SubjectRequest struct {
	Name string `json:"nombreMateria"`
}
