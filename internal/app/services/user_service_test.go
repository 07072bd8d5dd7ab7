package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/app/models/dto"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
	"github.com/lmartinez/boletin-digital/internal/pkg/auth"
)

func setupUserService() (UserService, *mockUserStore, *mockCourseStore) {
	userStore := newMockUserStore()
	courseStore := newMockCourseStore()
	courseStore.addCourse("1A")
	svc := NewUserService(userStore, courseStore, zerolog.Nop())
	return svc, userStore, courseStore
}

func TestUpdate_StudentRoleRequiresCourse(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno1", "secreto123", models.StatusApproved)

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: "Alumno Uno",
		Email:    "alumno1@test.local",
		DNI:      "30111222",
		Role:     "alumno",
		Status:   "aprobado",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdate_RoleChangeAwayFromStudentClearsCourse(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno2", "secreto123", models.StatusApproved)
	courseID := int64(1)
	user.CourseID = &courseID

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: "Ex Alumno",
		Email:    "exalumno@test.local",
		DNI:      "30111223",
		Role:     "alumnado",
		Status:   "aprobado",
	})
	require.NoError(t, err)

	updated, err := userStore.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, updated.Role)
	assert.Nil(t, updated.CourseID)
}

func TestUpdate_UnknownCourse(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno3", "secreto123", models.StatusApproved)

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: "Alumno Tres",
		Email:    "alumno3@test.local",
		DNI:      "30111224",
		Role:     "alumno",
		Course:   "9Z",
		Status:   "aprobado",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno4", "secreto123", models.StatusApproved)

	err := svc.Update(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: "Alumno Cuatro",
		Email:    "alumno4@test.local",
		DNI:      "30111225",
		Role:     "alumnado",
		Status:   "suspendido",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdate_UserNotFound(t *testing.T) {
	svc, _, _ := setupUserService()

	err := svc.Update(context.Background(), 999, &dto.UpdateUserRequest{
		FullName: "Nadie",
		Email:    "nadie@test.local",
		DNI:      "30111226",
		Role:     "alumnado",
		Status:   "aprobado",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestChangeOwnPassword_Success(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno5", "secreto123", models.StatusApproved)

	err := svc.ChangeOwnPassword(context.Background(), user.ID, &dto.ChangeOwnPasswordRequest{
		CurrentPassword: "secreto123",
		NewPassword:     "nueva12345",
	})
	require.NoError(t, err)

	updated, err := userStore.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "nueva12345"))
}

func TestChangeOwnPassword_WrongCurrentPassword(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno6", "secreto123", models.StatusApproved)

	err := svc.ChangeOwnPassword(context.Background(), user.ID, &dto.ChangeOwnPasswordRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrCurrentPasswordMismatch)
}

func TestChangeOwnPassword_ShortNewPassword(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno7", "secreto123", models.StatusApproved)

	err := svc.ChangeOwnPassword(context.Background(), user.ID, &dto.ChangeOwnPasswordRequest{
		CurrentPassword: "secreto123",
		NewPassword:     "corta",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSetPassword_ShortPassword(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno8", "secreto123", models.StatusApproved)

	err := svc.SetPassword(context.Background(), user.ID, "corta")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestResetPassword_ReturnsUsableTempPassword(t *testing.T) {
	svc, userStore, _ := setupUserService()
	user := seedUser(t, userStore, "alumno9", "secreto123", models.StatusApproved)

	tempPassword, err := svc.ResetPassword(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^Temp\d{6}$`), tempPassword)

	updated, err := userStore.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, tempPassword))
	assert.False(t, auth.CheckPassword(updated.PasswordHash, "secreto123"))
}

func TestGetStudent_NonStudentIsNotFound(t *testing.T) {
	svc, userStore, _ := setupUserService()
	staff := &models.User{
		Username: "staff1",
		FullName: "Personal Uno",
		Email:    "staff1@test.local",
		DNI:      "30111230",
		Role:     models.RoleStaff,
		Status:   models.StatusApproved,
	}
	_, err := userStore.Create(context.Background(), staff)
	require.NoError(t, err)

	_, err = svc.GetStudent(context.Background(), staff.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
