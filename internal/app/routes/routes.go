package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/omerl/unirest/internal/app/controllers"
	"github.com/omerl/unirest/internal/app/models/dto"
)

// SetupRouter configures all application routes. Paths keep the trailing
// slashes of the original API surface.
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	enrollmentController *controllers.EnrollmentController,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/", courseController.ListCourses)
		courses.GET("/:id/", courseController.GetCourseByID)
		courses.PATCH("/:id/", courseController.UpdateCourse)
		courses.DELETE("/:id/", courseController.DeleteCourse)
	}

	students := api.Group("/students")
	{
		students.POST("/", studentController.CreateStudent)
		students.GET("/", studentController.ListStudents)

		// List-level actions; registered before the id routes for clarity,
		// gin resolves static segments ahead of parameters either way.
		students.GET("/enrolled/", enrollmentController.ListEnrolled)
		students.POST("/bulk_enrol/", enrollmentController.BulkEnrol)
		students.GET("/outstanding/", enrollmentController.Outstanding)
		students.GET("/valedictorian/", enrollmentController.Valedictorian)

		students.GET("/:id/", studentController.GetStudentByID)
		students.PATCH("/:id/", studentController.UpdateStudent)
		students.DELETE("/:id/", studentController.DeleteStudent)

		students.POST("/:id/enrol/", enrollmentController.Enrol)
		students.DELETE("/:id/enrol/", enrollmentController.Unenrol)
		students.POST("/:id/grade/", enrollmentController.Grade)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewDataResponse(gin.H{"status": "ok"}))
	})
}
