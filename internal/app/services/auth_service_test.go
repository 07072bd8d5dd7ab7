package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/auth"
)

func setupAuthService() (AuthService, *mockUserStore, *mockCourseStore) {
	userStore := newMockUserStore()
	courseStore := newMockCourseStore()
	courseStore.addCourse("1A")
	svc := NewAuthService(userStore, courseStore, zerolog.Nop())
	return svc, userStore, courseStore
}

func seedUser(t *testing.T, store *mockUserStore, username, password string, status models.AccountStatus) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Usuario de Prueba",
		Email:        username + "@test.local",
		DNI:          "dni-" + username,
		Role:         models.RoleStudent,
		Status:       status,
	}
	_, err = store.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestLogin_ApprovedAccount(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "lmartinez", "secreto123", models.StatusApproved)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "lmartinez",
		Password: "secreto123",
	})

	require.NoError(t, err)
	assert.Equal(t, "lmartinez", user.Username)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := setupAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

// An unknown user and a wrong password must come back as the same
// error so callers cannot enumerate accounts.
func TestLogin_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "lmartinez", "secreto123", models.StatusApproved)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nadie",
		Password: "secreto123",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "lmartinez",
		Password: "incorrecta",
	})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogin_PendingAccount(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "pendiente1", "secreto123", models.StatusPending)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "pendiente1",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountPending)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "baja1", "secreto123", models.StatusDisabled)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "baja1",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

// The state gate only opens after the password check: a wrong password
// on a pending account must still read as bad credentials.
func TestLogin_WrongPasswordBeatsPendingState(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "pendiente2", "secreto123", models.StatusPending)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "pendiente2",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnrecognizedStateEmbedsLiteral(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	user := seedUser(t, userStore, "raro1", "secreto123", models.StatusApproved)
	user.Status = "suspendido"

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "raro1",
		Password: "secreto123",
	})

	assert.ErrorIs(t, err, apperrors.ErrAccountStateUnknown)
	assert.Contains(t, apperrors.Message(err, ""), `"suspendido"`)
}

func TestRegisterStudent_ForcesRoleAndPendingStatus(t *testing.T) {
	svc, userStore, _ := setupAuthService()

	err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "alumno1",
		Password: "secreto123",
		DNI:      "30111222",
		Email:    "alumno1@test.local",
		FullName: "Alumno Uno",
		Course:   "1A",
	})
	require.NoError(t, err)

	user, err := userStore.GetByUsername(context.Background(), "alumno1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, models.StatusPending, user.Status)
	require.NotNil(t, user.CourseID)
}

func TestRegisterStudent_UnknownCourse(t *testing.T) {
	svc, _, _ := setupAuthService()

	err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "alumno2",
		Password: "secreto123",
		DNI:      "30111223",
		Email:    "alumno2@test.local",
		FullName: "Alumno Dos",
		Course:   "9Z",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, apperrors.Message(err, ""), `"9Z"`)
}

func TestRegisterStudent_ShortPassword(t *testing.T) {
	svc, _, _ := setupAuthService()

	err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Username: "alumno3",
		Password: "corta",
		DNI:      "30111224",
		Email:    "alumno3@test.local",
		FullName: "Alumno Tres",
		Course:   "1A",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_StudentRoleRequiresCourse(t *testing.T) {
	svc, _, _ := setupAuthService()

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alumno4",
		Password: "secreto123",
		DNI:      "30111225",
		Email:    "alumno4@test.local",
		FullName: "Alumno Cuatro",
		Role:     "alumno",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_StaffRoleIgnoresCourse(t *testing.T) {
	svc, userStore, _ := setupAuthService()

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "staff1",
		Password: "secreto123",
		DNI:      "30111226",
		Email:    "staff1@test.local",
		FullName: "Personal Uno",
		Role:     "alumnado",
	})
	require.NoError(t, err)

	user, err := userStore.GetByUsername(context.Background(), "staff1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.Nil(t, user.CourseID)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _, _ := setupAuthService()

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "prof1",
		Password: "secreto123",
		DNI:      "30111227",
		Email:    "prof1@test.local",
		FullName: "Profesor Uno",
		Role:     "profesor",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegister_StatusDefaultsToApproved(t *testing.T) {
	svc, userStore, _ := setupAuthService()

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "staff2",
		Password: "secreto123",
		DNI:      "30111228",
		Email:    "staff2@test.local",
		FullName: "Personal Dos",
		Role:     "alumnado",
		Status:   "lo-que-sea",
	})
	require.NoError(t, err)

	user, err := userStore.GetByUsername(context.Background(), "staff2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, user.Status)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, userStore, _ := setupAuthService()
	seedUser(t, userStore, "repetido", "secreto123", models.StatusApproved)

	err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "repetido",
		Password: "secreto123",
		DNI:      "30111229",
		Email:    "otro@test.local",
		FullName: "Otro Usuario",
		Role:     "alumnado",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}
