package dto

import "github.com/omerl/unirest/internal/app/models"

// EnrolRequest enrolls a student in a course, optionally with an initial grade.
type EnrolRequest struct {
	Course string `json:"course" binding:"required" example:"b3c7f9d2-4a11-4a9e-9f5e-2d1c0e8a7b61"`
	Grade  *int   `json:"grade" example:"91"`
}

// GradeRequest sets the grade of an existing enrollment.
type GradeRequest struct {
	Course string `json:"course" binding:"required" example:"b3c7f9d2-4a11-4a9e-9f5e-2d1c0e8a7b61"`
	Grade  *int   `json:"grade" binding:"required" example:"91"`
}

// UnenrolRequest soft-deletes an active enrollment.
type UnenrolRequest struct {
	Course string `json:"course" binding:"required" example:"b3c7f9d2-4a11-4a9e-9f5e-2d1c0e8a7b61"`
}

// StudentScore pairs a student with their weighted grade average.
type StudentScore struct {
	Student *models.Student `json:"student"`
	Score   float64         `json:"score" example:"84.71"`
}
