package models

// Course represents an offered academic unit.
type Course struct {
	ID          string   `json:"id" db:"id"`
	Faculty     string   `json:"faculty" db:"faculty"`
	Subject     string   `json:"subject" db:"subject"`
	Description *string  `json:"description" db:"description"` // Nullable
	Year        int      `json:"year" db:"year"`
	Semester    Semester `json:"semester,omitempty" db:"semester"`
	Points      int      `json:"points" db:"points"`
}

// DefaultCoursePoints is the point weight assigned when a course is created
// without an explicit value.
const DefaultCoursePoints = 4
