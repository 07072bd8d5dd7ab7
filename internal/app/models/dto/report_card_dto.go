package dto

// ReportCardEntryInput is one subject's grades in an upsert batch.
// Grade fields are nullable; nil is the "ungraded" marker.
type ReportCardEntryInput struct {
	SubjectID    int64  `json:"id_materia"`
	Term1Exam1   *int16 `json:"p1_1c"`
	Term1Exam2   *int16 `json:"p2_1c"`
	Term1Final   *int16 `json:"nf_1c"`
	Term2Exam1   *int16 `json:"p1_2c"`
	Term2Exam2   *int16 `json:"p2_2c"`
	Term2Final   *int16 `json:"nf_2c"`
	AnnualGrade  *int16 `json:"nota_anual"`
	DecemberExam *int16 `json:"diciembre_acreditacion"`
	FebMarchExam *int16 `json:"feb_mar_recuperatorio"`
	FinalGrade   *int16 `json:"nota_definitiva"`
}

// UpsertReportCardRequest is the full report-card write payload for
// one student and one academic year.
type UpsertReportCardRequest struct {
	Year    int                    `json:"anio"`
	Entries []ReportCardEntryInput `json:"materias"`
}
