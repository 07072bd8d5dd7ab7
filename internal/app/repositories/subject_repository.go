package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/dberrors"
)

const constraintSubjectName = "materias_nombre_materia_key"

// SubjectRepository handles database operations for the materias table.
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a subject and returns its id.
func (r *SubjectRepository) Create(ctx context.Context, name string) (int64, error) {
	sql, args, err := r.sb.Insert("materias").
		Columns("nombre_materia").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create subject query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err, constraintSubjectName) {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
		return 0, fmt.Errorf("error creating subject: %w", err)
	}

	return id, nil
}

// Rename updates a subject's name.
func (r *SubjectRepository) Rename(ctx context.Context, id int64, name string) error {
	sql, args, err := r.sb.Update("materias").
		Set("nombre_materia", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rename subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, constraintSubjectName) {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error renaming subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete removes a subject unconditionally; report-card rows for the
// subject cascade away with it.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("materias").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// List retrieves all subjects ordered by name.
func (r *SubjectRepository) List(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "nombre_materia").
		From("materias").
		OrderBy("nombre_materia ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}
