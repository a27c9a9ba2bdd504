package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/models/dto"
	"github.com/omerl/unirest/internal/app/repositories"
	"github.com/omerl/unirest/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id string, patch *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Faculty) == "" {
		return fmt.Errorf("%w: faculty cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Subject) == "" {
		return fmt.Errorf("%w: subject cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.Description == nil {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidationFailed)
	}
	if course.Year == 0 {
		return fmt.Errorf("%w: year is required", apperrors.ErrValidationFailed)
	}
	if course.Semester != "" && !course.Semester.IsValid() {
		return fmt.Errorf("%w: semester must be one of FALL, SPRING, SUMMER", apperrors.ErrValidationFailed)
	}
	if course.Points < 0 {
		return fmt.Errorf("%w: points must not be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: course ID is required", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses retrieves courses matching the filter
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse applies a partial update to an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, patch *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(course)
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse deletes a course by ID. Enrollments referencing the course are
// not cleaned up; their references dangle.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: course ID is required", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.Delete(ctx, id)
}
