package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omerl/unirest/internal/app/models/dto"
	"github.com/omerl/unirest/internal/pkg/apperrors"
	"github.com/omerl/unirest/internal/pkg/logger"
)

// errorDetails prefers the structured details carried by a CustomError over
// the flat error string.
func errorDetails(err error) interface{} {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil {
		return custom.Details
	}
	return err.Error()
}

// HandleAPIError maps service errors onto status codes and the error envelope.
// Business-rule failures (duplicate enrollment, grading an unenrolled student,
// an unresolved course reference in a request body) are 400s; missing
// resources addressed by URL are 404s.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrNoEligibleStudent):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoEligibleStudent, "No student has a graded enrollment").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrCourseNotResolved):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCourseNotResolved, "Course reference does not resolve").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeAlreadyEnrolled, "Student already enrolled in course").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrNotEnrolled):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotEnrolled, "Student not enrolled in course").WithDetails(errorDetails(err))))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithDetails(errorDetails(err))))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
