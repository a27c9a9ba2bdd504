package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/repositories"
	"github.com/omerl/unirest/internal/pkg/apperrors"
	"github.com/omerl/unirest/internal/pkg/logger"
)

// ScoredStudent pairs a student with their weighted grade average.
type ScoredStudent struct {
	Student *models.Student
	Score   float64
}

// EnrollmentService owns the enrollment lifecycle and the score aggregates.
type EnrollmentService interface {
	// Enrol adds an active enrollment, optionally graded immediately.
	Enrol(ctx context.Context, studentID, courseID string, grade *int) (*models.Student, error)
	// Grade overwrites the grade of the first active enrollment for the course.
	Grade(ctx context.Context, studentID, courseID string, grade int) (*models.Student, error)
	// Unenrol soft-deletes the first active enrollment for the course.
	Unenrol(ctx context.Context, studentID, courseID string) (*models.Student, error)
	// BulkEnrol enrols every student not yet actively enrolled in the course.
	// When name is set, only students whose name contains it are considered.
	BulkEnrol(ctx context.Context, courseID string, name *string) ([]*models.Student, error)
	// ListEnrolled returns the students actively enrolled in the course.
	ListEnrolled(ctx context.Context, courseID string) ([]*models.Student, error)
	// Outstanding returns eligible students scoring at least minScore,
	// best first; ties keep listing order.
	Outstanding(ctx context.Context, minScore float64) ([]ScoredStudent, error)
	// Valedictorian returns the single highest-scoring eligible student.
	Valedictorian(ctx context.Context) (*ScoredStudent, error)
}

type enrollmentServiceImpl struct {
	courseRepo  repositories.CourseRepository
	studentRepo repositories.StudentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(courseRepo repositories.CourseRepository, studentRepo repositories.StudentRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
	}
}

// resolveCourse checks a course reference coming from a request body. An
// unknown id is a business-rule failure, not a missing resource.
func (s *enrollmentServiceImpl) resolveCourse(ctx context.Context, courseID string) (*models.Course, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: course is required", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseNotResolved, "course reference does not resolve").
				WithDetails(map[string]interface{}{"course": courseID})
		}
		return nil, err
	}
	return course, nil
}

// Enrol enrolls a student in a course
func (s *enrollmentServiceImpl) Enrol(ctx context.Context, studentID, courseID string, grade *int) (*models.Student, error) {
	course, err := s.resolveCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.ActiveEnrollment(course.ID) != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyEnrolled, "student already enrolled in course").
			WithDetails(map[string]interface{}{"course": course.ID})
	}

	student.Enrol(course.ID, grade)
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Str("studentID", student.ID).Str("courseID", course.ID).Msg("Student enrolled")
	return student, nil
}

// Grade records a grade for an enrolled student
func (s *enrollmentServiceImpl) Grade(ctx context.Context, studentID, courseID string, grade int) (*models.Student, error) {
	course, err := s.resolveCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollment := student.ActiveEnrollment(course.ID)
	if enrollment == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrNotEnrolled, "student not enrolled in course").
			WithDetails(map[string]interface{}{"course": course.ID})
	}

	// Re-grading overwrites
	enrollment.Grade = &grade
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Str("studentID", student.ID).Str("courseID", course.ID).Int("grade", grade).Msg("Grade recorded")
	return student, nil
}

// Unenrol soft-deletes an enrollment; the record stays in the document as history.
func (s *enrollmentServiceImpl) Unenrol(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	course, err := s.resolveCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollment := student.ActiveEnrollment(course.ID)
	if enrollment == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrNotEnrolled, "student not enrolled in course").
			WithDetails(map[string]interface{}{"course": course.ID})
	}

	enrollment.IsDeleted = true
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// BulkEnrol enrolls all matching students in the course, skipping students
// already enrolled, and returns the course's full enrolled listing.
func (s *enrollmentServiceImpl) BulkEnrol(ctx context.Context, courseID string, name *string) ([]*models.Student, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: course is required", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.studentRepo.List(ctx, repositories.StudentFilter{Name: name})
	if err != nil {
		return nil, err
	}

	enrolled := 0
	for _, student := range candidates {
		if student.ActiveEnrollment(course.ID) != nil {
			continue
		}
		student.Enrol(course.ID, nil)
		if err := s.studentRepo.Update(ctx, student); err != nil {
			return nil, err
		}
		enrolled++
	}

	logger.Info().Str("courseID", course.ID).Int("enrolled", enrolled).Msg("Bulk enrollment finished")
	return s.studentRepo.ListEnrolledIn(ctx, course.ID)
}

// ListEnrolled returns the students enrolled in a course
func (s *enrollmentServiceImpl) ListEnrolled(ctx context.Context, courseID string) ([]*models.Student, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: course is required", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	return s.studentRepo.ListEnrolledIn(ctx, courseID)
}

// WeightedScore computes a student's weighted grade average over active,
// graded enrollments: sum(grade*points)/sum(points). Enrollments that are
// soft-deleted, ungraded, or whose course no longer resolves contribute
// nothing. The second return is false when no enrollment carries weight,
// which keeps the division guarded.
func WeightedScore(student *models.Student, coursePoints map[string]int) (float64, bool) {
	weightedSum := 0
	totalPoints := 0
	for _, e := range student.Enrollments {
		if e.IsDeleted || e.Grade == nil {
			continue
		}
		points, ok := coursePoints[e.CourseID]
		if !ok {
			// Dangling reference; the course was deleted
			continue
		}
		weightedSum += *e.Grade * points
		totalPoints += points
	}

	if totalPoints == 0 {
		return 0, false
	}
	return float64(weightedSum) / float64(totalPoints), true
}

// scoreAll computes scores for every eligible student, in listing order.
func (s *enrollmentServiceImpl) scoreAll(ctx context.Context) ([]ScoredStudent, error) {
	courses, err := s.courseRepo.List(ctx, repositories.CourseFilter{})
	if err != nil {
		return nil, err
	}
	coursePoints := make(map[string]int, len(courses))
	for _, c := range courses {
		coursePoints[c.ID] = c.Points
	}

	students, err := s.studentRepo.List(ctx, repositories.StudentFilter{})
	if err != nil {
		return nil, err
	}

	scored := []ScoredStudent{}
	for _, student := range students {
		score, ok := WeightedScore(student, coursePoints)
		if !ok {
			continue
		}
		scored = append(scored, ScoredStudent{Student: student, Score: score})
	}
	return scored, nil
}

// Outstanding returns students whose weighted average meets the threshold
func (s *enrollmentServiceImpl) Outstanding(ctx context.Context, minScore float64) ([]ScoredStudent, error) {
	scored, err := s.scoreAll(ctx)
	if err != nil {
		return nil, err
	}

	outstanding := []ScoredStudent{}
	for _, ss := range scored {
		if ss.Score >= minScore {
			outstanding = append(outstanding, ss)
		}
	}

	sort.SliceStable(outstanding, func(i, j int) bool {
		return outstanding[i].Score > outstanding[j].Score
	})
	return outstanding, nil
}

// Valedictorian returns the top-scoring student
func (s *enrollmentServiceImpl) Valedictorian(ctx context.Context) (*ScoredStudent, error) {
	ranked, err := s.Outstanding(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, apperrors.ErrNoEligibleStudent
	}
	return &ranked[0], nil
}
