package repositories

import (
	"github.com/lmartinez/boletin-digital/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	SubjectRepository    *SubjectRepository
	ReportCardRepository *ReportCardRepository
}

// NewRepositories initializes all repositories against one shared
// store client. The report-card repository additionally needs the
// transaction helper, so it takes the whole PostgresDB.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		SubjectRepository:    NewSubjectRepository(database.Pool),
		ReportCardRepository: NewReportCardRepository(database),
	}
}
