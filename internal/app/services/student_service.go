package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/models/dto"
	"github.com/omerl/unirest/internal/app/repositories"
	"github.com/omerl/unirest/internal/pkg/apperrors"
	"github.com/omerl/unirest/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id string, patch *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// validateStudent validates student data before database operations
func validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.City) == "" {
		return fmt.Errorf("%w: city cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(student.Email) {
		return fmt.Errorf("%w: email is not valid", apperrors.ErrValidationFailed)
	}
	if student.YearOfBirth == 0 {
		return fmt.Errorf("%w: yearOfBirth is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent creates a new student document
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: student ID is required", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByID(ctx, id)
}

// ListStudents retrieves students matching the filter
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent applies a partial update to an existing student. Enrollments
// are untouched; those change only through the enrollment service.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, patch *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(student)
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent deletes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: student ID is required", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.Delete(ctx, id)
}
