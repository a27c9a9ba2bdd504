package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omerl/unirest/internal/app/models/dto"
	"github.com/omerl/unirest/internal/app/repositories"
	"github.com/omerl/unirest/internal/app/services"
	"github.com/omerl/unirest/internal/middleware"
)

// StudentController handles student CRUD operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student. Email must be unique across all students.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email"
// @Router /students/ [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := req.ToModel()
	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student))
}

// ListStudents retrieves students, optionally filtered
// @Summary List students
// @Description Retrieves all students. Filters combine with AND semantics.
// @Tags students
// @Produce json
// @Param name query string false "Keep students whose name contains this substring"
// @Param city query string false "Keep students whose city contains this substring"
// @Param minimal_year query int false "Keep students born in or after this year"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid filter value"
// @Router /students/ [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filter, ok := parseStudentFilter(ctx)
	if !ok {
		return
	}

	students, err := c.studentService.ListStudents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// parseStudentFilter reads the optional listing predicates from the query
// string. On a malformed value it writes the 400 response and returns false.
func parseStudentFilter(ctx *gin.Context) (repositories.StudentFilter, bool) {
	var filter repositories.StudentFilter

	if name := ctx.Query("name"); name != "" {
		filter.Name = &name
	}
	if city := ctx.Query("city"); city != "" {
		filter.City = &city
	}
	if raw := ctx.Query("minimal_year"); raw != "" {
		minYear, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minimal_year value").
				WithField("minimal_year").WithDetails("minimal_year must be an integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return filter, false
		}
		filter.MinimalYear = &minYear
	}

	return filter, true
}

// GetStudentByID retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student and their enrollment history
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/ [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// UpdateStudent applies a partial update to a student
// @Summary Update a student
// @Description Updates the provided demographic fields of an existing student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate email"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/ [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/ [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(nil))
}
