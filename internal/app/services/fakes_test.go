package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/repositories"
	"github.com/omerl/unirest/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the persistence semantics the
// services rely on: copies in and out, filters with AND semantics, listing
// in insertion order.

type fakeCourseRepository struct {
	courses []*models.Course
}

func newFakeCourseRepository() *fakeCourseRepository {
	return &fakeCourseRepository{courses: []*models.Course{}}
}

func (r *fakeCourseRepository) Create(_ context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	stored := *course
	r.courses = append(r.courses, &stored)
	return nil
}

func (r *fakeCourseRepository) GetByID(_ context.Context, id string) (*models.Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepository) List(_ context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	out := []*models.Course{}
	for _, c := range r.courses {
		if filter.MinimalPoints != nil && c.Points < *filter.MinimalPoints {
			continue
		}
		found := *c
		out = append(out, &found)
	}
	return out, nil
}

func (r *fakeCourseRepository) Update(_ context.Context, course *models.Course) error {
	for i, c := range r.courses {
		if c.ID == course.ID {
			stored := *course
			r.courses[i] = &stored
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepository) Delete(_ context.Context, id string) error {
	for i, c := range r.courses {
		if c.ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

type fakeStudentRepository struct {
	students []*models.Student
}

func newFakeStudentRepository() *fakeStudentRepository {
	return &fakeStudentRepository{students: []*models.Student{}}
}

func copyStudent(s *models.Student) *models.Student {
	cp := *s
	cp.Enrollments = append([]models.Enrollment{}, s.Enrollments...)
	return &cp
}

func (r *fakeStudentRepository) Create(_ context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	for _, s := range r.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.students = append(r.students, copyStudent(student))
	return nil
}

func (r *fakeStudentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			return copyStudent(s), nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) List(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range r.students {
		if filter.Name != nil && !strings.Contains(s.Name, *filter.Name) {
			continue
		}
		if filter.City != nil && !strings.Contains(s.City, *filter.City) {
			continue
		}
		if filter.MinimalYear != nil && s.YearOfBirth < *filter.MinimalYear {
			continue
		}
		out = append(out, copyStudent(s))
	}
	return out, nil
}

func (r *fakeStudentRepository) Update(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.ID != student.ID && s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	for i, s := range r.students {
		if s.ID == student.ID {
			r.students[i] = copyStudent(student)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) Delete(_ context.Context, id string) error {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) ListEnrolledIn(_ context.Context, courseID string) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, s := range r.students {
		if s.ActiveEnrollment(courseID) != nil {
			out = append(out, copyStudent(s))
		}
	}
	return out, nil
}
