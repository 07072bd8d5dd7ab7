package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/db"
)

// gradeColumns lists the grade columns of the boletines table in
// declaration order.
var gradeColumns = []string{
	"p1_1c", "p2_1c", "nf_1c",
	"p1_2c", "p2_2c", "nf_2c",
	"nota_anual", "diciembre_acreditacion", "feb_mar_recuperatorio",
	"nota_definitiva",
}

// ReportCardRepository owns the boletines table. Batch writes go
// through a single transaction so a report card is always saved
// all-or-nothing.
type ReportCardRepository struct {
	database *db.PostgresDB
	sb       squirrel.StatementBuilderType
}

// NewReportCardRepository creates a new ReportCardRepository
func NewReportCardRepository(database *db.PostgresDB) *ReportCardRepository {
	return &ReportCardRepository{
		database: database,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByStudentYear retrieves a student's report card for one
// academic year, joined with subject names, ordered by subject name.
// No entries is an empty result, not an error.
func (r *ReportCardRepository) ListByStudentYear(ctx context.Context, userID int64, year int) ([]*models.ReportCardEntry, error) {
	cols := []string{"b.id", "b.id_usuario", "b.id_materia", "m.nombre_materia", "b.anio_lectivo"}
	for _, c := range gradeColumns {
		cols = append(cols, "b."+c)
	}

	sql, args, err := r.sb.Select(cols...).
		From("boletines b").
		Join("materias m ON b.id_materia = m.id").
		Where(squirrel.Eq{"b.id_usuario": userID, "b.anio_lectivo": year}).
		OrderBy("m.nombre_materia ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report card query: %w", err)
	}

	rows, err := r.database.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying report card: %w", err)
	}
	defer rows.Close()

	entries := []*models.ReportCardEntry{}
	for rows.Next() {
		e := &models.ReportCardEntry{}
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.SubjectID, &e.SubjectName, &e.Year,
			&e.Term1Exam1, &e.Term1Exam2, &e.Term1Final,
			&e.Term2Exam1, &e.Term2Exam2, &e.Term2Final,
			&e.AnnualGrade, &e.DecemberExam, &e.FebMarchExam,
			&e.FinalGrade,
		); err != nil {
			return nil, fmt.Errorf("error scanning report card row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// upsertSQL is the per-entry insert-or-update statement keyed by the
// (id_usuario, id_materia, anio_lectivo) triple.
const upsertSQL = `
	INSERT INTO boletines (
		id_usuario, id_materia, anio_lectivo,
		p1_1c, p2_1c, nf_1c,
		p1_2c, p2_2c, nf_2c,
		nota_anual, diciembre_acreditacion, feb_mar_recuperatorio,
		nota_definitiva
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id_usuario, id_materia, anio_lectivo) DO UPDATE SET
		p1_1c = EXCLUDED.p1_1c,
		p2_1c = EXCLUDED.p2_1c,
		nf_1c = EXCLUDED.nf_1c,
		p1_2c = EXCLUDED.p1_2c,
		p2_2c = EXCLUDED.p2_2c,
		nf_2c = EXCLUDED.nf_2c,
		nota_anual = EXCLUDED.nota_anual,
		diciembre_acreditacion = EXCLUDED.diciembre_acreditacion,
		feb_mar_recuperatorio = EXCLUDED.feb_mar_recuperatorio,
		nota_definitiva = EXCLUDED.nota_definitiva`

// UpsertBatch writes a full report card in one transaction: one
// insert-or-update per entry, committed together. Any row failure
// (a dangling subject id included) rolls the whole batch back.
func (r *ReportCardRepository) UpsertBatch(ctx context.Context, userID int64, year int, entries []*models.ReportCardEntry) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(ctx, upsertSQL,
				userID, e.SubjectID, year,
				e.Term1Exam1, e.Term1Exam2, e.Term1Final,
				e.Term2Exam1, e.Term2Exam2, e.Term2Final,
				e.AnnualGrade, e.DecemberExam, e.FebMarchExam,
				e.FinalGrade,
			)
			if err != nil {
				return fmt.Errorf("error upserting report card entry for subject %d: %w", e.SubjectID, err)
			}
		}
		return nil
	})
}
