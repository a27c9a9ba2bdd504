package dto

import "github.com/omerl/unirest/internal/app/models"

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	Faculty     string  `json:"faculty" binding:"required" example:"Computer Science"`
	Subject     string  `json:"subject" binding:"required" example:"Linear Algebra"`
	Description *string `json:"description" binding:"required" example:"Vectors and matrices"`
	Year        int     `json:"year" binding:"required" example:"2017"`
	Semester    string  `json:"semester" binding:"omitempty,semester" example:"FALL"`
	Points      *int    `json:"points" binding:"omitempty,min=0" example:"4"`
}

// ToModel converts the request into a course, applying the points default.
func (r *CreateCourseRequest) ToModel() *models.Course {
	points := models.DefaultCoursePoints
	if r.Points != nil {
		points = *r.Points
	}
	return &models.Course{
		Faculty:     r.Faculty,
		Subject:     r.Subject,
		Description: r.Description,
		Year:        r.Year,
		Semester:    models.Semester(r.Semester),
		Points:      points,
	}
}

// UpdateCourseRequest is the payload for a partial course update.
// Absent fields keep their stored values.
type UpdateCourseRequest struct {
	Faculty     *string `json:"faculty" example:"Mathematics"`
	Subject     *string `json:"subject" example:"Linear Algebra 2"`
	Description *string `json:"description" example:"Eigenvalues"`
	Year        *int    `json:"year" example:"2018"`
	Semester    *string `json:"semester" binding:"omitempty,semester" example:"SPRING"`
	Points      *int    `json:"points" binding:"omitempty,min=0" example:"3"`
}

// Apply overlays the provided fields onto the course.
func (r *UpdateCourseRequest) Apply(course *models.Course) {
	if r.Faculty != nil {
		course.Faculty = *r.Faculty
	}
	if r.Subject != nil {
		course.Subject = *r.Subject
	}
	if r.Description != nil {
		course.Description = r.Description
	}
	if r.Year != nil {
		course.Year = *r.Year
	}
	if r.Semester != nil {
		course.Semester = models.Semester(*r.Semester)
	}
	if r.Points != nil {
		course.Points = *r.Points
	}
}
