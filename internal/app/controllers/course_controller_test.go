package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/models/dto"
)

func TestCreateCourseEndpoint(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodPost, "/api/courses/", map[string]interface{}{
		"faculty":     "Computer Science",
		"subject":     "Linear Algebra",
		"description": "Vectors and matrices",
		"year":        2017,
		"semester":    "FALL",
		"points":      3,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var course models.Course
	decodeData(t, recorder, &course)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "Linear Algebra", course.Subject)
	assert.Equal(t, models.SemesterFall, course.Semester)
	assert.Equal(t, 3, course.Points)
}

func TestCreateCourseDefaultsPoints(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodPost, "/api/courses/", map[string]interface{}{
		"faculty":     "Computer Science",
		"subject":     "Linear Algebra",
		"description": "Vectors and matrices",
		"year":        2017,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var course models.Course
	decodeData(t, recorder, &course)
	assert.Equal(t, models.DefaultCoursePoints, course.Points)
	assert.Empty(t, course.Semester)
}

func TestCreateCourseRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing subject", map[string]interface{}{
			"faculty": "CS", "description": "d", "year": 2017,
		}},
		{"missing description", map[string]interface{}{
			"faculty": "CS", "subject": "Algo", "year": 2017,
		}},
		{"bad semester", map[string]interface{}{
			"faculty": "CS", "subject": "Algo", "description": "d", "year": 2017, "semester": "WINTER",
		}},
		{"negative points", map[string]interface{}{
			"faculty": "CS", "subject": "Algo", "description": "d", "year": 2017, "points": -1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			recorder := env.request(t, http.MethodPost, "/api/courses/", tt.payload)
			require.Equal(t, http.StatusBadRequest, recorder.Code)

			res := decodeEnvelope(t, recorder)
			require.NotNil(t, res.Error)
			assert.Equal(t, dto.ErrorCodeValidationFailed, res.Error.Code)
		})
	}
}

func TestListCoursesEndpoint(t *testing.T) {
	env := newTestEnv()
	env.seedCourse(t, "Linear Algebra", 3)
	env.seedCourse(t, "Operating Systems", 5)

	recorder := env.request(t, http.MethodGet, "/api/courses/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var courses []models.Course
	decodeData(t, recorder, &courses)
	assert.Len(t, courses, 2)
}

func TestListCoursesMinimalPointsFilter(t *testing.T) {
	env := newTestEnv()
	env.seedCourse(t, "Linear Algebra", 3)
	env.seedCourse(t, "Operating Systems", 5)

	recorder := env.request(t, http.MethodGet, "/api/courses/?minimal_points=4", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var courses []models.Course
	decodeData(t, recorder, &courses)
	require.Len(t, courses, 1)
	assert.Equal(t, "Operating Systems", courses[0].Subject)
}

func TestListCoursesRejectsNonIntegerFilter(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodGet, "/api/courses/?minimal_points=three", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, "minimal_points", res.Error.Field)
}

func TestGetCourseEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)

	recorder := env.request(t, http.MethodGet, "/api/courses/"+course.ID+"/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.Course
	decodeData(t, recorder, &got)
	assert.Equal(t, course.ID, got.ID)
}

func TestGetCourseNotFound(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodGet, "/api/courses/no-such-course/", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, res.Error.Code)
}

func TestUpdateCourseEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)

	recorder := env.request(t, http.MethodPatch, "/api/courses/"+course.ID+"/", map[string]interface{}{
		"subject": "Linear Algebra 2",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.Course
	decodeData(t, recorder, &got)
	assert.Equal(t, "Linear Algebra 2", got.Subject)
	assert.Equal(t, "Computer Science", got.Faculty)
	assert.Equal(t, 3, got.Points)
}

func TestDeleteCourseEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)

	recorder := env.request(t, http.MethodDelete, "/api/courses/"+course.ID+"/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/courses/"+course.ID+"/", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
