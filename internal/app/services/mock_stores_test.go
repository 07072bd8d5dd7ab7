package services

import (
	"context"
	"strings"

	"github.com/lmartinez/boletin-digital/internal/app/models"
	"github.com/lmartinez/boletin-digital/internal/pkg/apperrors"
)

// In-memory store implementations shared by the service tests.

type mockUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if u.DNI == user.DNI {
			return 0, apperrors.ErrDNIAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return user.ID, nil
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) List(_ context.Context) ([]*models.User, error) {
	users := []*models.User{}
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserStore) Update(_ context.Context, user *models.User) error {
	existing, ok := m.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Username = existing.Username
	user.PasswordHash = existing.PasswordHash
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserStore) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	u, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *mockUserStore) ListStudents(_ context.Context) ([]*models.StudentSummary, error) {
	students := []*models.StudentSummary{}
	for _, u := range m.users {
		if u.Role == models.RoleStudent {
			students = append(students, &models.StudentSummary{
				ID:         u.ID,
				Username:   u.Username,
				FullName:   u.FullName,
				DNI:        u.DNI,
				CourseName: u.CourseName,
				Status:     u.Status,
			})
		}
	}
	return students, nil
}

func (m *mockUserStore) GetStudentByID(_ context.Context, id int64) (*models.StudentSummary, error) {
	u, ok := m.users[id]
	if !ok || u.Role != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}
	return &models.StudentSummary{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		DNI:        u.DNI,
		CourseName: u.CourseName,
		Status:     u.Status,
	}, nil
}

type mockCourseStore struct {
	courses map[int64]*models.Course
	inUse   map[int64]bool
	nextID  int64
}

func newMockCourseStore() *mockCourseStore {
	return &mockCourseStore{
		courses: make(map[int64]*models.Course),
		inUse:   make(map[int64]bool),
		nextID:  1,
	}
}

func (m *mockCourseStore) addCourse(name string) *models.Course {
	c := &models.Course{ID: m.nextID, Name: name}
	m.nextID++
	m.courses[c.ID] = c
	return c
}

func (m *mockCourseStore) Create(_ context.Context, name string) (int64, error) {
	for _, c := range m.courses {
		if c.Name == name {
			return 0, apperrors.ErrCourseAlreadyExists
		}
	}
	return m.addCourse(name).ID, nil
}

func (m *mockCourseStore) Rename(_ context.Context, id int64, name string) error {
	c, ok := m.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, other := range m.courses {
		if other.ID != id && other.Name == name {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	c.Name = name
	return nil
}

func (m *mockCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if m.inUse[id] {
		return apperrors.ErrCourseInUse
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseStore) List(_ context.Context) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, c := range m.courses {
		courses = append(courses, c)
	}
	return courses, nil
}

func (m *mockCourseStore) GetByName(_ context.Context, name string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

type mockSubjectStore struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func newMockSubjectStore() *mockSubjectStore {
	return &mockSubjectStore{subjects: make(map[int64]*models.Subject), nextID: 1}
}

func (m *mockSubjectStore) Create(_ context.Context, name string) (int64, error) {
	for _, s := range m.subjects {
		if strings.EqualFold(s.Name, name) {
			return 0, apperrors.ErrSubjectAlreadyExists
		}
	}
	s := &models.Subject{ID: m.nextID, Name: name}
	m.nextID++
	m.subjects[s.ID] = s
	return s.ID, nil
}

func (m *mockSubjectStore) Rename(_ context.Context, id int64, name string) error {
	s, ok := m.subjects[id]
	if !ok {
		return apperrors.ErrSubjectNotFound
	}
	s.Name = name
	return nil
}

func (m *mockSubjectStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.subjects[id]; !ok {
		return apperrors.ErrSubjectNotFound
	}
	delete(m.subjects, id)
	return nil
}

func (m *mockSubjectStore) List(_ context.Context) ([]*models.Subject, error) {
	subjects := []*models.Subject{}
	for _, s := range m.subjects {
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// mockReportCardStore records every UpsertBatch call so tests can
// assert whether (and with what) the store was reached.
type mockReportCardStore struct {
	entries     map[int64][]*models.ReportCardEntry
	upsertCalls int
	failUpsert  error
}

func newMockReportCardStore() *mockReportCardStore {
	return &mockReportCardStore{entries: make(map[int64][]*models.ReportCardEntry)}
}

func (m *mockReportCardStore) ListByStudentYear(_ context.Context, userID int64, year int) ([]*models.ReportCardEntry, error) {
	result := []*models.ReportCardEntry{}
	for _, e := range m.entries[userID] {
		if e.Year == year {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockReportCardStore) UpsertBatch(_ context.Context, userID int64, year int, entries []*models.ReportCardEntry) error {
	m.upsertCalls++
	if m.failUpsert != nil {
		return m.failUpsert
	}
	kept := m.entries[userID][:0]
	for _, old := range m.entries[userID] {
		replaced := false
		for _, e := range entries {
			if old.SubjectID == e.SubjectID && old.Year == year {
				replaced = true
				break
			}
		}
		if !replaced {
			kept = append(kept, old)
		}
	}
	m.entries[userID] = append(kept, entries...)
	return nil
}
