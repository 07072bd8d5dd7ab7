package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
)

// ReportCardService handles report-card reads and the transactional
// full-card upsert.
type ReportCardService interface {
	Get(ctx context.Context, studentID int64, year int) ([]*models.ReportCardEntry, error)
	Upsert(ctx context.Context, studentID int64, req *dto.UpsertReportCardRequest) error
}

type reportCardService struct {
	store  ReportCardStore
	logger zerolog.Logger
}

// NewReportCardService creates a new ReportCardService
func NewReportCardService(store ReportCardStore, logger zerolog.Logger) ReportCardService {
	return &reportCardService{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the report card for one student and year.
func (s *reportCardService) Get(ctx context.Context, studentID int64, year int) ([]*models.ReportCardEntry, error) {
	return s.store.ListByStudentYear(ctx, studentID, year)
}

// Upsert validates the whole batch before any store access, then
// writes it in one atomic unit. One invalid field anywhere rejects
// everything, so the ledger is never partially updated.
func (s *reportCardService) Upsert(ctx context.Context, studentID int64, req *dto.UpsertReportCardRequest) error {
	if req.Year == 0 || len(req.Entries) == 0 {
		return apperrors.NewValidationError("Se requiere el año lectivo y al menos una materia.")
	}

	entries := make([]*models.ReportCardEntry, 0, len(req.Entries))
	for i, in := range req.Entries {
		if in.SubjectID <= 0 {
			return apperrors.NewValidationError(fmt.Sprintf("La materia en la posición %d no tiene id válido.", i+1))
		}

		entry := &models.ReportCardEntry{
			UserID:       studentID,
			SubjectID:    in.SubjectID,
			Year:         req.Year,
			Term1Exam1:   in.Term1Exam1,
			Term1Exam2:   in.Term1Exam2,
			Term1Final:   in.Term1Final,
			Term2Exam1:   in.Term2Exam1,
			Term2Exam2:   in.Term2Exam2,
			Term2Final:   in.Term2Final,
			AnnualGrade:  in.AnnualGrade,
			DecemberExam: in.DecemberExam,
			FebMarchExam: in.FebMarchExam,
			FinalGrade:   in.FinalGrade,
		}

		for _, g := range entry.Grades() {
			if !g.InRange() {
				return apperrors.NewValidationError(fmt.Sprintf(
					"La nota %s de la materia %d debe ser un entero entre %d y %d.",
					g.Name, in.SubjectID, models.GradeMin, models.GradeMax,
				))
			}
		}

		entries = append(entries, entry)
	}

	if err := s.store.UpsertBatch(ctx, studentID, req.Year, entries); err != nil {
		s.logger.Error().Err(err).Int64("studentID", studentID).Int("year", req.Year).Msg("Report card upsert failed, batch rolled back")
		return err
	}

	return nil
}
