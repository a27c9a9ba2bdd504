package models

// Student defines the student model based on the 'students' table. The
// enrollment list is embedded in the row as JSONB, so one-enrollment-per-course
// stays a single-row concern.
type Student struct {
	ID          string       `json:"id" db:"id" example:"b3c7f9d2-4a11-4a9e-9f5e-2d1c0e8a7b61"`
	Name        string       `json:"name" db:"name" example:"Natalie"`
	City        string       `json:"city" db:"city" example:"Haifa"`
	Email       string       `json:"email" db:"email" example:"natalie@example.com"`
	YearOfBirth int          `json:"yearOfBirth" db:"year_of_birth" example:"1987"`
	Enrollments []Enrollment `json:"enrollments" db:"enrollments"`
}

// Enrollment is a value object embedded in a Student document. It references
// its Course by id only; the reference is non-owning and may dangle if the
// course is deleted.
type Enrollment struct {
	CourseID  string `json:"course"`
	Grade     *int   `json:"grade"`
	IsDeleted bool   `json:"isDeleted"`
}

// ActiveEnrollment returns the first non-deleted enrollment for the given
// course, or nil if the student is not actively enrolled in it.
func (s *Student) ActiveEnrollment(courseID string) *Enrollment {
	for i := range s.Enrollments {
		e := &s.Enrollments[i]
		if e.CourseID == courseID && !e.IsDeleted {
			return e
		}
	}
	return nil
}

// Enrol appends a new active enrollment. The list is append-only; earlier
// soft-deleted records for the same course are retained as history.
func (s *Student) Enrol(courseID string, grade *int) {
	s.Enrollments = append(s.Enrollments, Enrollment{CourseID: courseID, Grade: grade})
}
