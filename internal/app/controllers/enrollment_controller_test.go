package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerl/unirest/internal/app/models"
	"github.com/omerl/unirest/internal/app/models/dto"
)

func TestEnrolEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.Student
	decodeData(t, recorder, &got)
	require.Len(t, got.Enrollments, 1)
	assert.Equal(t, course.ID, got.Enrollments[0].CourseID)
	assert.Nil(t, got.Enrollments[0].Grade)
}

func TestEnrolDuplicateEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	payload := map[string]interface{}{"course": course.ID}
	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", payload)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeAlreadyEnrolled, res.Error.Code)

	// Structured details name the offending course.
	details, ok := res.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, course.ID, details["course"])
}

func TestEnrolUnresolvedCourseEndpoint(t *testing.T) {
	env := newTestEnv()
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", map[string]interface{}{
		"course": "no-such-course",
	})
	// The course reference rides in the body, so a bad one is a 400, not a 404.
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeCourseNotResolved, res.Error.Code)
}

func TestEnrolUnknownStudentEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)

	recorder := env.request(t, http.MethodPost, "/api/students/no-such-student/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGradeEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodPost, "/api/students/"+student.ID+"/grade/", map[string]interface{}{
		"course": course.ID,
		"grade":  91,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.Student
	decodeData(t, recorder, &got)
	require.Len(t, got.Enrollments, 1)
	require.NotNil(t, got.Enrollments[0].Grade)
	assert.Equal(t, 91, *got.Enrollments[0].Grade)
}

func TestGradeRequiresGradeField(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/grade/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, res.Error.Code)
}

func TestGradeNotEnrolledEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/grade/", map[string]interface{}{
		"course": course.ID,
		"grade":  91,
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeNotEnrolled, res.Error.Code)
}

func TestUnenrolEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	student := env.seedStudent(t, "Natalie", "natalie@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+student.ID+"/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodDelete, "/api/students/"+student.ID+"/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.Student
	decodeData(t, recorder, &got)
	require.Len(t, got.Enrollments, 1)
	assert.True(t, got.Enrollments[0].IsDeleted)

	// The soft-deleted enrollment no longer shows up in the course listing.
	recorder = env.request(t, http.MethodGet, "/api/students/enrolled/?course="+course.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var enrolled []models.Student
	decodeData(t, recorder, &enrolled)
	assert.Empty(t, enrolled)
}

func TestListEnrolledEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	natalie := env.seedStudent(t, "Natalie", "natalie@example.com")
	env.seedStudent(t, "Roy", "roy@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+natalie.ID+"/enrol/", map[string]interface{}{
		"course": course.ID,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/students/enrolled/?course="+course.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var enrolled []models.Student
	decodeData(t, recorder, &enrolled)
	require.Len(t, enrolled, 1)
	assert.Equal(t, natalie.ID, enrolled[0].ID)
}

func TestListEnrolledMissingCourseParam(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodGet, "/api/students/enrolled/", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, res.Error.Code)
}

func TestListEnrolledUnknownCourseEndpoint(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodGet, "/api/students/enrolled/?course=no-such-course", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestBulkEnrolEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	env.seedStudent(t, "Natalie", "natalie@example.com")
	env.seedStudent(t, "Nathan", "nathan@example.com")
	env.seedStudent(t, "Roy", "roy@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/bulk_enrol/?course="+course.ID+"&name=Nat", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var enrolled []models.Student
	decodeData(t, recorder, &enrolled)
	require.Len(t, enrolled, 2)
	for _, s := range enrolled {
		assert.Contains(t, s.Name, "Nat")
	}
}

func TestBulkEnrolUnknownCourseEndpoint(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodPost, "/api/students/bulk_enrol/?course=no-such-course", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestOutstandingEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	natalie := env.seedStudent(t, "Natalie", "natalie@example.com")
	roy := env.seedStudent(t, "Roy", "roy@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+natalie.ID+"/enrol/", map[string]interface{}{
		"course": course.ID, "grade": 91,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = env.request(t, http.MethodPost, "/api/students/"+roy.ID+"/enrol/", map[string]interface{}{
		"course": course.ID, "grade": 88,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/students/outstanding/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var outstanding []dto.StudentScore
	decodeData(t, recorder, &outstanding)
	require.Len(t, outstanding, 1)
	assert.Equal(t, natalie.ID, outstanding[0].Student.ID)
	assert.InDelta(t, 91.0, outstanding[0].Score, 1e-9)
}

func TestValedictorianEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse(t, "Linear Algebra", 3)
	natalie := env.seedStudent(t, "Natalie", "natalie@example.com")
	roy := env.seedStudent(t, "Roy", "roy@example.com")

	recorder := env.request(t, http.MethodPost, "/api/students/"+natalie.ID+"/enrol/", map[string]interface{}{
		"course": course.ID, "grade": 85,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = env.request(t, http.MethodPost, "/api/students/"+roy.ID+"/enrol/", map[string]interface{}{
		"course": course.ID, "grade": 97,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.request(t, http.MethodGet, "/api/students/valedictorian/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var top dto.StudentScore
	decodeData(t, recorder, &top)
	require.NotNil(t, top.Student)
	assert.Equal(t, roy.ID, top.Student.ID)
	assert.InDelta(t, 97.0, top.Score, 1e-9)
}

func TestValedictorianNobodyEligible(t *testing.T) {
	env := newTestEnv()

	recorder := env.request(t, http.MethodGet, "/api/students/valedictorian/", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	res := decodeEnvelope(t, recorder)
	require.NotNil(t, res.Error)
	assert.Equal(t, dto.ErrorCodeNoEligibleStudent, res.Error.Code)
}
