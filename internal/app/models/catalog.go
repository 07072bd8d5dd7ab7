package models

// Course defines the course model based on the 'cursos' table
type Course struct {
	ID   int64  `json:"id_curso" db:"id"`
	Name string `json:"nombre_curso" db:"nombre_curso"`
}

// Subject defines the subject model based on the 'materias' table
type Subject struct {
	ID   int64  `json:"id_materia" db:"id"`
	Name string `json:"nombre_materia" db:"nombre_materia"`
}
