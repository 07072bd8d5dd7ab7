package dto

// RegisterRequest is the admin-panel user creation payload. Any of
// the three roles may be created; curso is required only for alumno
// and estadoCuenta defaults to aprobado when absent or unrecognized.
type RegisterRequest struct {
	Username string `json:"usuario"`
	Password string `json:"password"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	FullName string `json:"nombreCompleto"`
	Role     string `json:"rol"`
	Course   string `json:"curso"`
	Status   string `json:"estadoCuenta"`
}

// RegisterStudentRequest is the self-service student registration
// payload. Role is forced to alumno, status to pendiente.
type RegisterStudentRequest struct {
	Username string `json:"usuario"`
	Password string `json:"password"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	FullName string `json:"nombreCompleto"`
	Course   string `json:"curso"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"usuario"`
	Password string `json:"password"`
}
