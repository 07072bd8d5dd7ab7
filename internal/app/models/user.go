package models

// Role identifies what a session is expected to do in the system.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "alumnado"
	RoleStudent Role = "alumno"
)

// Valid reports whether the role is one of the three recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// AccountStatus gates login independent of credential correctness.
type AccountStatus string

const (
	StatusPending  AccountStatus = "pendiente"
	StatusApproved AccountStatus = "aprobado"
	StatusDisabled AccountStatus = "deshabilitado"
)

// Valid reports whether the status is one of the three recognized states.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisabled:
		return true
	}
	return false
}

// User defines the user model based on the 'usuarios' table.
// CourseID is non-null only for the alumno role; CourseName is filled
// by list queries joining cursos.
type User struct {
	ID           int64         `json:"id_usuario" db:"id"`
	Username     string        `json:"usuario" db:"usuario"`
	PasswordHash string        `json:"-" db:"contrasena_hash"`
	FullName     string        `json:"nombre_completo" db:"nombre_completo"`
	Email        string        `json:"email" db:"email"`
	DNI          string        `json:"dni" db:"dni"`
	Role         Role          `json:"rol" db:"rol"`
	CourseID     *int64        `json:"-" db:"id_curso"`
	CourseName   *string       `json:"curso" db:"curso"`
	Status       AccountStatus `json:"estado_cuenta" db:"estado_cuenta"`
}

// StudentSummary is the projection returned by the alumnos listings.
type StudentSummary struct {
	ID         int64         `json:"id_usuario" db:"id"`
	Username   string        `json:"usuario" db:"usuario"`
	FullName   string        `json:"nombre_completo" db:"nombre_completo"`
	DNI        string        `json:"dni" db:"dni"`
	CourseName *string       `json:"curso" db:"curso"`
	Status     AccountStatus `json:"estado_cuenta" db:"estado_cuenta"`
}
