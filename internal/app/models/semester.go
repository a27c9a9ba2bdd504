package models

// Semester identifies the term in which a course is offered.
type Semester string

const (
	SemesterFall   Semester = "FALL"
	SemesterSpring Semester = "SPRING"
	SemesterSummer Semester = "SUMMER"
)

// IsValid reports whether s is one of the known semesters. The empty value is
// not valid here; callers that allow an unset semester check for "" first.
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFall, SemesterSpring, SemesterSummer:
		return true
	}
	return false
}
