package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/dberrors"
)

// Unique constraint names from migrations/001_init.sql. Duplicate-key
// failures are classified by these instead of message text.
const (
	constraintUsername = "usuarios_usuario_key"
	constraintEmail    = "usuarios_email_key"
	constraintDNI      = "usuarios_dni_key"
)

// UserRepository handles database operations for the usuarios table.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// classifyUniqueViolation maps a constraint violation to the
// field-specific sentinel, or returns nil when err is not one.
func classifyUniqueViolation(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err, constraintUsername):
		return apperrors.ErrUsernameTaken
	case dberrors.IsUniqueViolation(err, constraintEmail):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsUniqueViolation(err, constraintDNI):
		return apperrors.ErrDNIAlreadyExists
	}
	return nil
}

// Create inserts a new user and returns its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO usuarios (usuario, contrasena_hash, nombre_completo, email, dni, rol, id_curso, estado_cuenta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Username, user.PasswordHash, user.FullName, user.Email,
		user.DNI, user.Role, user.CourseID, user.Status).Scan(&id)

	if err != nil {
		if dup := classifyUniqueViolation(err); dup != nil {
			return 0, dup
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves a user by login name.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, usuario, contrasena_hash, nombre_completo, email, dni, rol, id_curso, estado_cuenta
		FROM usuarios
		WHERE usuario = $1`,
		username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName,
		&user.Email, &user.DNI, &user.Role, &user.CourseID, &user.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, usuario, contrasena_hash, nombre_completo, email, dni, rol, id_curso, estado_cuenta
		FROM usuarios
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName,
		&user.Email, &user.DNI, &user.Role, &user.CourseID, &user.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by id: %w", err)
	}

	return user, nil
}

// List retrieves every user joined with its course name, ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.usuario, u.nombre_completo, u.email, u.dni, u.rol, c.nombre_curso, u.estado_cuenta
		FROM usuarios u
		LEFT JOIN cursos c ON u.id_curso = c.id
		ORDER BY u.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Username, &user.FullName, &user.Email,
			&user.DNI, &user.Role, &user.CourseName, &user.Status,
		); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Update overwrites a user's profile fields (not the password hash).
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE usuarios
		SET nombre_completo = $1, email = $2, dni = $3, rol = $4, id_curso = $5, estado_cuenta = $6
		WHERE id = $7`,
		user.FullName, user.Email, user.DNI, user.Role, user.CourseID, user.Status, user.ID)

	if err != nil {
		if dup := classifyUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by id.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE usuarios SET contrasena_hash = $1 WHERE id = $2`,
		hash, id)
	if err != nil {
		return fmt.Errorf("error updating password hash: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ListStudents retrieves the alumno projection ordered by course
// name, then full name.
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.StudentSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.usuario, u.nombre_completo, u.dni, c.nombre_curso, u.estado_cuenta
		FROM usuarios u
		LEFT JOIN cursos c ON u.id_curso = c.id
		WHERE u.rol = $1
		ORDER BY c.nombre_curso, u.nombre_completo`,
		models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.StudentSummary
	for rows.Next() {
		s := &models.StudentSummary{}
		if err := rows.Scan(&s.ID, &s.Username, &s.FullName, &s.DNI, &s.CourseName, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetStudentByID retrieves a single alumno projection.
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentSummary, error) {
	s := &models.StudentSummary{}
	err := r.db.QueryRow(ctx, `
		SELECT u.id, u.usuario, u.nombre_completo, u.dni, c.nombre_curso, u.estado_cuenta
		FROM usuarios u
		LEFT JOIN cursos c ON u.id_curso = c.id
		WHERE u.rol = $1 AND u.id = $2`,
		models.RoleStudent, id).Scan(
		&s.ID, &s.Username, &s.FullName, &s.DNI, &s.CourseName, &s.Status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}

	return s, nil
}

// HasAdmin reports whether at least one admin user exists.
func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios WHERE rol = $1)`,
		models.RoleAdmin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking for admin user: %w", err)
	}
	return exists, nil
}
