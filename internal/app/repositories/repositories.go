package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository implementations for dependency wiring.
type Repositories struct {
	CourseRepository  CourseRepository
	StudentRepository StudentRepository
}

// NewRepositories creates the repository container backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:  NewCourseRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
