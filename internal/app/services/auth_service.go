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

// AuthService handles registration and the login gate.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
}

type authService struct {
	userStore   UserStore
	courseStore CourseStore
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, courseStore CourseStore, logger zerolog.Logger) AuthService {
	return &authService{
		userStore:   userStore,
		courseStore: courseStore,
		logger:      logger,
	}
}

// validatePassword checks the minimum password length.
func validatePassword(password string) error {
	if len(password) < auth.MinPasswordLength {
		return apperrors.NewValidationError("La contraseña debe tener al menos 8 caracteres.")
	}
	return nil
}

// resolveCourse maps a course name to its id.
func (s *authService) resolveCourse(ctx context.Context, name string) (*int64, error) {
	course, err := s.courseStore.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("El curso %q no existe.", name))
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}
	return &course.ID, nil
}

// Register creates a user from the admin panel. Any role is allowed;
// status defaults to aprobado unless a recognized one is supplied.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if req.Username == "" || req.Password == "" || req.DNI == "" || req.Email == "" || req.FullName == "" || req.Role == "" {
		return apperrors.NewValidationError("Faltan datos obligatorios (usuario, contraseña, DNI, email, nombre completo y rol).")
	}

	if err := validatePassword(req.Password); err != nil {
		return err
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return apperrors.NewValidationError("Rol inválido para creación de usuario desde administración.")
	}

	// Course reference is required exactly for the alumno role and
	// must stay null for every other role.
	var courseID *int64
	if role == models.RoleStudent {
		if req.Course == "" {
			return apperrors.NewValidationError(`Para el rol "alumno" el curso es obligatorio.`)
		}
		var err error
		courseID, err = s.resolveCourse(ctx, req.Course)
		if err != nil {
			return err
		}
	}

	status := models.StatusApproved
	if st := models.AccountStatus(req.Status); st.Valid() {
		status = st
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.userStore.Create(ctx, &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Email:        req.Email,
		DNI:          req.DNI,
		Role:         role,
		CourseID:     courseID,
		Status:       status,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User created from admin panel")
	return nil
}

// RegisterStudent creates a self-service registration: role is forced
// to alumno, account status to pendiente.
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	if req.Username == "" || req.Password == "" || req.DNI == "" || req.Email == "" || req.FullName == "" || req.Course == "" {
		return apperrors.NewValidationError("Faltan datos obligatorios.")
	}

	if err := validatePassword(req.Password); err != nil {
		return err
	}

	courseID, err := s.resolveCourse(ctx, req.Course)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.userStore.Create(ctx, &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Email:        req.Email,
		DNI:          req.DNI,
		Role:         models.RoleStudent,
		CourseID:     courseID,
		Status:       models.StatusPending,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("userID", id).Msg("Student self-registered, pending approval")
	return nil
}

// Login evaluates the account gate. The branch order matters: an
// unknown user and a wrong password must be indistinguishable to the
// caller, while pending and disabled accounts get their own messages.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Usuario y contraseña son obligatorios.")
	}

	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.StatusPending:
		return nil, apperrors.ErrAccountPending
	case models.StatusDisabled:
		return nil, apperrors.ErrAccountDisabled
	case models.StatusApproved:
		return user, nil
	default:
		return nil, apperrors.NewCustomError(
			apperrors.ErrAccountStateUnknown,
			fmt.Sprintf("Cuenta en estado %q. Consulte con el administrador.", string(user.Status)),
		)
	}
}
