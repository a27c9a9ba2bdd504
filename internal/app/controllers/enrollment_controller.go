package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omerl/unirest/internal/app/models/dto"
	"github.com/omerl/unirest/internal/app/services"
	"github.com/omerl/unirest/internal/middleware"
)

// EnrollmentController handles the enrollment actions hanging off the
// students resource: enrol, grade, unenrol, the enrolled listing, bulk
// enrollment and the score aggregates.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	// outstandingThreshold is the minimum weighted score for the
	// outstanding listing, from config (default 90).
	outstandingThreshold float64
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, outstandingThreshold float64) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService:    enrollmentService,
		outstandingThreshold: outstandingThreshold,
	}
}

// Enrol enrolls a student in a course
// @Summary Enrol a student in a course
// @Description Appends an active enrollment, optionally graded immediately. A student holds at most one active enrollment per course.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.EnrolRequest true "Course reference and optional grade"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.APIResponse "Duplicate enrollment or bad course reference"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/enrol/ [post]
func (c *EnrollmentController) Enrol(ctx *gin.Context) {
	var req dto.EnrolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.enrollmentService.Enrol(ctx, ctx.Param("id"), req.Course, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// Grade sets the grade of an enrollment
// @Summary Grade an enrolled student
// @Description Sets the grade of the student's active enrollment for the course. Re-grading overwrites.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.GradeRequest true "Course reference and grade"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.APIResponse "Not enrolled or bad course reference"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/grade/ [post]
func (c *EnrollmentController) Grade(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.enrollmentService.Grade(ctx, ctx.Param("id"), req.Course, *req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// Unenrol soft-deletes an enrollment
// @Summary Unenrol a student from a course
// @Description Soft-deletes the active enrollment; the record stays in the student's history and never scores or lists again.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UnenrolRequest true "Course reference"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Updated student"
// @Failure 400 {object} dto.APIResponse "Not enrolled or bad course reference"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/enrol/ [delete]
func (c *EnrollmentController) Unenrol(ctx *gin.Context) {
	var req dto.UnenrolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid unenrol data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.enrollmentService.Unenrol(ctx, ctx.Param("id"), req.Course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// ListEnrolled lists the students enrolled in a course
// @Summary List students enrolled in a course
// @Tags enrollments
// @Produce json
// @Param course query string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Enrolled students"
// @Failure 400 {object} dto.APIResponse "Missing course parameter"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /students/enrolled/ [get]
func (c *EnrollmentController) ListEnrolled(ctx *gin.Context) {
	students, err := c.enrollmentService.ListEnrolled(ctx, ctx.Query("course"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// BulkEnrol enrolls all matching students in a course
// @Summary Bulk-enrol students in a course
// @Description Enrols every student not already actively enrolled in the course. The name parameter narrows the candidates to students whose name contains it.
// @Tags enrollments
// @Produce json
// @Param course query string true "Course ID"
// @Param name query string false "Candidate name substring"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "All students enrolled in the course"
// @Failure 400 {object} dto.APIResponse "Missing course parameter"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /students/bulk_enrol/ [post]
func (c *EnrollmentController) BulkEnrol(ctx *gin.Context) {
	var name *string
	if raw := ctx.Query("name"); raw != "" {
		name = &raw
	}

	students, err := c.enrollmentService.BulkEnrol(ctx, ctx.Query("course"), name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// Outstanding lists students whose weighted average meets the threshold
// @Summary List outstanding students
// @Description Students whose weighted grade average meets the configured threshold, best first. Students without a graded, point-bearing enrollment are not eligible.
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentScore} "Outstanding students"
// @Router /students/outstanding/ [get]
func (c *EnrollmentController) Outstanding(ctx *gin.Context) {
	scored, err := c.enrollmentService.Outstanding(ctx, c.outstandingThreshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(toStudentScores(scored)))
}

// Valedictorian returns the top-scoring student
// @Summary Get the valedictorian
// @Description The single student with the highest weighted grade average
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentScore} "Top-scoring student"
// @Failure 404 {object} dto.APIResponse "No student has a graded enrollment"
// @Router /students/valedictorian/ [get]
func (c *EnrollmentController) Valedictorian(ctx *gin.Context) {
	top, err := c.enrollmentService.Valedictorian(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.StudentScore{Student: top.Student, Score: top.Score}))
}

func toStudentScores(scored []services.ScoredStudent) []dto.StudentScore {
	out := make([]dto.StudentScore, 0, len(scored))
	for _, ss := range scored {
		out = append(out, dto.StudentScore{Student: ss.Student, Score: ss.Score})
	}
	return out
}
