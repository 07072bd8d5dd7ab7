package services

import (
	"context"
	"strings"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
)

// CatalogService handles the course and subject reference tables.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, name string) (int64, error)
	RenameCourse(ctx context.Context, id int64, name string) error
	DeleteCourse(ctx context.Context, id int64) error

	ListSubjects(ctx context.Context) ([]*models.Subject, error)
	CreateSubject(ctx context.Context, name string) (int64, error)
	RenameSubject(ctx context.Context, id int64, name string) error
	DeleteSubject(ctx context.Context, id int64) error
}

type catalogService struct {
	courseStore  CourseStore
	subjectStore SubjectStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(courseStore CourseStore, subjectStore SubjectStore) CatalogService {
	return &catalogService{
		courseStore:  courseStore,
		subjectStore: subjectStore,
	}
}

// cleanName trims surrounding whitespace; names are compared and
// stored trimmed.
func cleanName(name, message string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError(message)
	}
	return name, nil
}

func (s *catalogService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseStore.List(ctx)
}

func (s *catalogService) CreateCourse(ctx context.Context, name string) (int64, error) {
	name, err := cleanName(name, "El nombre de curso es obligatorio.")
	if err != nil {
		return 0, err
	}
	return s.courseStore.Create(ctx, name)
}

func (s *catalogService) RenameCourse(ctx context.Context, id int64, name string) error {
	name, err := cleanName(name, "El nombre de curso es obligatorio.")
	if err != nil {
		return err
	}
	return s.courseStore.Rename(ctx, id, name)
}

// DeleteCourse removes a course; the store reports a conflict while
// any user still references it.
func (s *catalogService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseStore.Delete(ctx, id)
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectStore.List(ctx)
}

func (s *catalogService) CreateSubject(ctx context.Context, name string) (int64, error) {
	name, err := cleanName(name, "El nombre de la materia es obligatorio.")
	if err != nil {
		return 0, err
	}
	return s.subjectStore.Create(ctx, name)
}

func (s *catalogService) RenameSubject(ctx context.Context, id int64, name string) error {
	name, err := cleanName(name, "El nombre de la materia es obligatorio.")
	if err != nil {
		return err
	}
	return s.subjectStore.Rename(ctx, id, name)
}

// DeleteSubject removes a subject unconditionally.
func (s *catalogService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectStore.Delete(ctx, id)
}
