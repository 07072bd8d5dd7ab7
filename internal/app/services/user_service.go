package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/auth"
)

// UserService handles user administration and password management.
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) error
	Delete(ctx context.Context, id int64) error
	ChangeOwnPassword(ctx context.Context, id int64, req *dto.ChangeOwnPasswordRequest) error
	SetPassword(ctx context.Context, id int64, password string) error
	ResetPassword(ctx context.Context, id int64) (string, error)
	ListStudents(ctx context.Context) ([]*models.StudentSummary, error)
	GetStudent(ctx context.Context, id int64) (*models.StudentSummary, error)
}

type userService struct {
	userStore   UserStore
	courseStore CourseStore
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore UserStore, courseStore CourseStore, logger zerolog.Logger) UserService {
	return &userService{
		userStore:   userStore,
		courseStore: courseStore,
		logger:      logger,
	}
}

// List retrieves all users joined with course names.
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userStore.List(ctx)
}

// Update overwrites a user's profile. A role change away from alumno
// nulls the course reference; a role of alumno requires one.
func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if req.FullName == "" || req.Email == "" || req.DNI == "" || req.Role == "" || req.Status == "" {
		return apperrors.NewValidationError("Faltan datos obligatorios para la actualización.")
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("Rol inválido.")
	}

	status := models.AccountStatus(req.Status)
	if !status.Valid() {
		return apperrors.NewValidationError("Estado de cuenta inválido.")
	}

	var courseID *int64
	if role == models.RoleStudent {
		if req.Course == "" {
			return apperrors.NewValidationError(`Para el rol "alumno" el curso es obligatorio.`)
		}
		course, err := s.courseStore.GetByName(ctx, req.Course)
		if err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return apperrors.NewValidationError(fmt.Sprintf("El curso %q no existe.", req.Course))
			}
			return fmt.Errorf("error resolving course: %w", err)
		}
		courseID = &course.ID
	}

	return s.userStore.Update(ctx, &models.User{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		DNI:      req.DNI,
		Role:     role,
		CourseID: courseID,
		Status:   status,
	})
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}

// ChangeOwnPassword verifies the current password before replacing it.
func (s *userService) ChangeOwnPassword(ctx context.Context, id int64, req *dto.ChangeOwnPasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("Debés completar la contraseña actual y la nueva contraseña.")
	}

	if len(req.NewPassword) < auth.MinPasswordLength {
		return apperrors.NewValidationError("La nueva contraseña debe tener al menos 8 caracteres.")
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrCurrentPasswordMismatch
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userStore.UpdatePasswordHash(ctx, id, hash)
}

// SetPassword overwrites a user's password unconditionally (admin).
func (s *userService) SetPassword(ctx context.Context, id int64, password string) error {
	if len(password) < auth.MinPasswordLength {
		return apperrors.NewValidationError("La contraseña nueva es obligatoria y debe tener al menos 8 caracteres.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userStore.UpdatePasswordHash(ctx, id, hash)
}

// ResetPassword stores a generated temporary password and returns the
// plaintext so the caller can relay it out-of-band.
func (s *userService) ResetPassword(ctx context.Context, id int64) (string, error) {
	tempPassword, err := auth.GenerateTempPassword()
	if err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userStore.UpdatePasswordHash(ctx, id, hash); err != nil {
		return "", err
	}

	s.logger.Info().Int64("userID", id).Msg("Password reset to temporary value")
	return tempPassword, nil
}

// ListStudents retrieves the alumno projection.
func (s *userService) ListStudents(ctx context.Context) ([]*models.StudentSummary, error) {
	return s.userStore.ListStudents(ctx)
}

// GetStudent retrieves one alumno projection by user id.
func (s *userService) GetStudent(ctx context.Context, id int64) (*models.StudentSummary, error) {
	return s.userStore.GetStudentByID(ctx, id)
}
