package models

// Grade bounds for every report-card grade column. A nil field means
// "ungraded", which is distinct from any numeric value.
const (
	GradeMin = 1
	GradeMax = 10
)

// ReportCardEntry is one row of a student's report card: the grades
// of one subject for one academic year. Exactly one entry exists per
// (student, subject, year) triple.
type ReportCardEntry struct {
	ID          int64  `json:"id_boletin" db:"id"`
	UserID      int64  `json:"-" db:"id_usuario"`
	SubjectID   int64  `json:"id_materia" db:"id_materia"`
	SubjectName string `json:"nombre_materia" db:"nombre_materia"`
	Year        int    `json:"anio_lectivo" db:"anio_lectivo"`

	Term1Exam1    *int16 `json:"p1_1c" db:"p1_1c"`
	Term1Exam2    *int16 `json:"p2_1c" db:"p2_1c"`
	Term1Final    *int16 `json:"nf_1c" db:"nf_1c"`
	Term2Exam1    *int16 `json:"p1_2c" db:"p1_2c"`
	Term2Exam2    *int16 `json:"p2_2c" db:"p2_2c"`
	Term2Final    *int16 `json:"nf_2c" db:"nf_2c"`
	AnnualGrade   *int16 `json:"nota_anual" db:"nota_anual"`
	DecemberExam  *int16 `json:"diciembre_acreditacion" db:"diciembre_acreditacion"`
	FebMarchExam  *int16 `json:"feb_mar_recuperatorio" db:"feb_mar_recuperatorio"`
	FinalGrade    *int16 `json:"nota_definitiva" db:"nota_definitiva"`
}

// Grades returns the ten grade fields in column order, paired with
// their wire names. Used by validation and by the upsert statement.
func (e *ReportCardEntry) Grades() []GradeField {
	return []GradeField{
		{"p1_1c", e.Term1Exam1},
		{"p2_1c", e.Term1Exam2},
		{"nf_1c", e.Term1Final},
		{"p1_2c", e.Term2Exam1},
		{"p2_2c", e.Term2Exam2},
		{"nf_2c", e.Term2Final},
		{"nota_anual", e.AnnualGrade},
		{"diciembre_acreditacion", e.DecemberExam},
		{"feb_mar_recuperatorio", e.FebMarchExam},
		{"nota_definitiva", e.FinalGrade},
	}
}

// GradeField pairs a grade column name with its (possibly nil) value.
type GradeField struct {
	Name  string
	Value *int16
}

// InRange reports whether the field is unset or within [GradeMin, GradeMax].
func (g GradeField) InRange() bool {
	return g.Value == nil || (*g.Value >= GradeMin && *g.Value <= GradeMax)
}
