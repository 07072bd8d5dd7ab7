package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
)

func setupCatalogService() (CatalogService, *mockCourseStore, *mockSubjectStore) {
	courseStore := newMockCourseStore()
	subjectStore := newMockSubjectStore()
	svc := NewCatalogService(courseStore, subjectStore)
	return svc, courseStore, subjectStore
}

func TestCreateCourse_TrimsName(t *testing.T) {
	svc, courseStore, _ := setupCatalogService()

	id, err := svc.CreateCourse(context.Background(), "  1A  ")
	require.NoError(t, err)

	course, err := courseStore.GetByName(context.Background(), "1A")
	require.NoError(t, err)
	assert.Equal(t, id, course.ID)
}

func TestCreateCourse_EmptyAfterTrim(t *testing.T) {
	svc, _, _ := setupCatalogService()

	_, err := svc.CreateCourse(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateCourse_Duplicate(t *testing.T) {
	svc, _, _ := setupCatalogService()

	_, err := svc.CreateCourse(context.Background(), "1A")
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), "1A")
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}

func TestDeleteCourse_InUse(t *testing.T) {
	svc, courseStore, _ := setupCatalogService()

	id, err := svc.CreateCourse(context.Background(), "1A")
	require.NoError(t, err)
	courseStore.inUse[id] = true

	err = svc.DeleteCourse(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrCourseInUse)
}

func TestRenameCourse_NotFound(t *testing.T) {
	svc, _, _ := setupCatalogService()

	err := svc.RenameCourse(context.Background(), 42, "2B")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCreateSubject_TrimsName(t *testing.T) {
	svc, _, subjectStore := setupCatalogService()

	id, err := svc.CreateSubject(context.Background(), " Matemática ")
	require.NoError(t, err)

	subjects, err := subjectStore.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, id, subjects[0].ID)
	assert.Equal(t, "Matemática", subjects[0].Name)
}

func TestCreateSubject_EmptyAfterTrim(t *testing.T) {
	svc, _, _ := setupCatalogService()

	_, err := svc.CreateSubject(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteSubject_Unconditional(t *testing.T) {
	svc, _, subjectStore := setupCatalogService()

	id, err := svc.CreateSubject(context.Background(), "Historia")
	require.NoError(t, err)

	err = svc.DeleteSubject(context.Background(), id)
	require.NoError(t, err)

	subjects, err := subjectStore.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subjects)
}
