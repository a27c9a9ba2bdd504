package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveEnrollment(t *testing.T) {
	grade := 91
	student := &Student{
		Enrollments: []Enrollment{
			{CourseID: "c1", Grade: &grade, IsDeleted: true},
			{CourseID: "c1"},
			{CourseID: "c2"},
		},
	}

	active := student.ActiveEnrollment("c1")
	require.NotNil(t, active)
	assert.False(t, active.IsDeleted)
	assert.Nil(t, active.Grade)

	assert.Nil(t, student.ActiveEnrollment("c3"))
}

func TestActiveEnrollmentReturnsMutableRecord(t *testing.T) {
	student := &Student{Enrollments: []Enrollment{{CourseID: "c1"}}}

	grade := 80
	student.ActiveEnrollment("c1").Grade = &grade

	require.NotNil(t, student.Enrollments[0].Grade)
	assert.Equal(t, 80, *student.Enrollments[0].Grade)
}

func TestEnrolAppendsHistory(t *testing.T) {
	student := &Student{}
	student.Enrol("c1", nil)
	student.Enrollments[0].IsDeleted = true
	student.Enrol("c1", nil)

	require.Len(t, student.Enrollments, 2)
	assert.True(t, student.Enrollments[0].IsDeleted)
	assert.False(t, student.Enrollments[1].IsDeleted)
}

func TestSemesterIsValid(t *testing.T) {
	assert.True(t, SemesterFall.IsValid())
	assert.True(t, SemesterSpring.IsValid())
	assert.True(t, SemesterSummer.IsValid())
	assert.False(t, Semester("").IsValid())
	assert.False(t, Semester("WINTER").IsValid())
	assert.False(t, Semester("fall").IsValid())
}
