package services

import (
	"context"

	"github.com/lmartinez/boletin-digital/internal/app/models"
)

// Store interfaces consumed by the services. The concrete
// implementations live in the repositories package; services receive
// them as explicit constructor dependencies.

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	ListStudents(ctx context.Context) ([]*models.StudentSummary, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentSummary, error)
}

// CourseStore persists the course reference table.
type CourseStore interface {
	Create(ctx context.Context, name string) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Course, error)
	GetByName(ctx context.Context, name string) (*models.Course, error)
}

// SubjectStore persists the subject reference table.
type SubjectStore interface {
	Create(ctx context.Context, name string) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Subject, error)
}

// ReportCardStore persists report-card entries. UpsertBatch is
// all-or-nothing for the whole slice.
type ReportCardStore interface {
	ListByStudentYear(ctx context.Context, userID int64, year int) ([]*models.ReportCardEntry, error)
	UpsertBatch(ctx context.Context, userID int64, year int, entries []*models.ReportCardEntry) error
}
