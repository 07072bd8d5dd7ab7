package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/dberrors"
)

const (
	constraintCourseName = "cursos_nombre_curso_key"
	constraintUserCourse = "usuarios_id_curso_fkey"
)

// CourseRepository handles database operations for the cursos table.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a course and returns its id.
func (r *CourseRepository) Create(ctx context.Context, name string) (int64, error) {
	sql, args, err := r.sb.Insert("cursos").
		Columns("nombre_curso").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err, constraintCourseName) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// Rename updates a course's name.
func (r *CourseRepository) Rename(ctx context.Context, id int64, name string) error {
	sql, args, err := r.sb.Update("cursos").
		Set("nombre_curso", name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rename course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err, constraintCourseName) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error renaming course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. Fails with ErrCourseInUse while any user
// still references it (FK restriction on usuarios.id_curso).
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("cursos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, constraintUserCourse) {
			return apperrors.ErrCourseInUse
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// List retrieves all courses ordered by name.
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "nombre_curso").
		From("cursos").
		OrderBy("nombre_curso ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByName retrieves a course by exact name.
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "nombre_curso").
		From("cursos").
		Where(squirrel.Eq{"nombre_curso": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by name: %w", err)
	}

	return course, nil
}
