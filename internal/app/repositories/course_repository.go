package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/pkg/apperrors"
	"github.com/omerl/unirest/internal/pkg/logger"
)

// CourseFilter holds the optional predicates for listing courses.
// Set fields combine with AND semantics.
type CourseFilter struct {
	// MinimalPoints keeps courses whose point weight is at least this value.
	MinimalPoints *int
}

// CourseRepository handles course persistence.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a CourseRepository backed by PostgreSQL.
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course, generating its id.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("id", "faculty", "subject", "description", "year", "semester", "points").
		Values(course.ID, course.Faculty, course.Subject, course.Description,
			course.Year, string(course.Semester), course.Points).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by id.
func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "faculty", "subject", "description", "year", "semester", "points").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the filter in creation order.
func (r *courseRepository) List(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	builder := r.sb.Select("id", "faculty", "subject", "description", "year", "semester", "points").
		From("courses").
		OrderBy("created_at ASC")

	if filter.MinimalPoints != nil {
		builder = builder.Where(squirrel.GtOrEq{"points": *filter.MinimalPoints})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update persists the full course document.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"faculty":     course.Faculty,
			"subject":     course.Subject,
			"description": course.Description,
			"year":        course.Year,
			"semester":    string(course.Semester),
			"points":      course.Points,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by id. Enrollment references to it are left dangling.
func (r *courseRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// scanCourse reads one course from a row, converting the semester text.
func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var semester string
	if err := row.Scan(&course.ID, &course.Faculty, &course.Subject, &course.Description,
		&course.Year, &semester, &course.Points); err != nil {
		return nil, err
	}
	course.Semester = models.Semester(semester)
	return course, nil
}
