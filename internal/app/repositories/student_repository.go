package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/pkg/apperrors"
	"github.com/omerl/unirest/internal/pkg/dberrors"
	"github.com/omerl/unirest/internal/pkg/logger"
)

// StudentFilter holds the optional predicates for listing students.
// Set fields combine with AND semantics.
type StudentFilter struct {
	// Name keeps students whose name contains this substring (case-sensitive).
	Name *string
	// City keeps students whose city contains this substring (case-sensitive).
	City *string
	// MinimalYear keeps students born in or after this year.
	MinimalYear *int
}

// StudentRepository handles student persistence, enrollments included.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	// ListEnrolledIn retrieves students holding an active enrollment for the
	// course, in student listing order.
	ListEnrolledIn(ctx context.Context, courseID string) ([]*models.Student, error)
}

type studentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a StudentRepository backed by PostgreSQL.
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{"id", "name", "city", "email", "year_of_birth", "enrollments"}

// emailUniqueConstraint is the unique constraint on students.email, named in
// the initial migration.
const emailUniqueConstraint = "students_email_key"

// escapeLikePattern escapes LIKE metacharacters so user-supplied substrings
// match literally.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Create inserts a new student document, generating its id.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.Enrollments == nil {
		student.Enrollments = []models.Enrollment{}
	}

	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.ID, student.Name, student.City, student.Email,
			student.YearOfBirth, student.Enrollments).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolationOn(err, emailUniqueConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student document by id.
func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// List retrieves students matching the filter in creation order.
func (r *studentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at ASC")

	if filter.Name != nil {
		builder = builder.Where(squirrel.Like{"name": "%" + escapeLikePattern(*filter.Name) + "%"})
	}
	if filter.City != nil {
		builder = builder.Where(squirrel.Like{"city": "%" + escapeLikePattern(*filter.City) + "%"})
	}
	if filter.MinimalYear != nil {
		builder = builder.Where(squirrel.GtOrEq{"year_of_birth": *filter.MinimalYear})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// Update persists the full student document, the enrollment list included.
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	if student.Enrollments == nil {
		student.Enrollments = []models.Enrollment{}
	}

	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":          student.Name,
			"city":          student.City,
			"email":         student.Email,
			"year_of_birth": student.YearOfBirth,
			"enrollments":   student.Enrollments,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, emailUniqueConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student document by id.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ListEnrolledIn matches students via JSONB containment on the embedded
// enrollment list, so the check stays inside the document.
func (r *studentRepository) ListEnrolledIn(ctx context.Context, courseID string) ([]*models.Student, error) {
	probe, err := json.Marshal([]map[string]interface{}{
		{"course": courseID, "isDeleted": false},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build enrollment probe: %w", err)
	}

	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Expr("enrollments @> ?", string(probe))).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrolled students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *studentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// scanStudent reads one student from a row; the enrollments column is JSONB
// and unmarshals straight into the embedded slice.
func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	if err := row.Scan(&student.ID, &student.Name, &student.City, &student.Email,
		&student.YearOfBirth, &student.Enrollments); err != nil {
		return nil, err
	}
	if student.Enrollments == nil {
		student.Enrollments = []models.Enrollment{}
	}
	return student, nil
}
