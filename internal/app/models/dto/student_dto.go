package dto

import "github.com/omerl/unirest/internal/app/models"

// CreateStudentRequest is the payload for creating a student. An initial
// enrollment list may be supplied; course references in it are stored as given.
type CreateStudentRequest struct {
	Name        string              `json:"name" binding:"required" example:"Natalie"`
	City        string              `json:"city" binding:"required" example:"Haifa"`
	Email       string              `json:"email" binding:"required,email" example:"natalie@example.com"`
	YearOfBirth int                 `json:"yearOfBirth" binding:"required" example:"1987"`
	Enrollments []models.Enrollment `json:"enrollments"`
}

// ToModel converts the request into a student document.
func (r *CreateStudentRequest) ToModel() *models.Student {
	enrollments := r.Enrollments
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return &models.Student{
		Name:        r.Name,
		City:        r.City,
		Email:       r.Email,
		YearOfBirth: r.YearOfBirth,
		Enrollments: enrollments,
	}
}

// UpdateStudentRequest is the payload for a partial student update.
// The enrollment list is only changed through the enrollment endpoints.
type UpdateStudentRequest struct {
	Name        *string `json:"name" example:"Natalie Shk"`
	City        *string `json:"city" example:"Tel Aviv"`
	Email       *string `json:"email" binding:"omitempty,email" example:"natalie.s@example.com"`
	YearOfBirth *int    `json:"yearOfBirth" example:"1987"`
}

// Apply overlays the provided fields onto the student.
func (r *UpdateStudentRequest) Apply(student *models.Student) {
	if r.Name != nil {
		student.Name = *r.Name
	}
	if r.City != nil {
		student.City = *r.City
	}
	if r.Email != nil {
		student.Email = *r.Email
	}
	if r.YearOfBirth != nil {
		student.YearOfBirth = *r.YearOfBirth
	}
}
