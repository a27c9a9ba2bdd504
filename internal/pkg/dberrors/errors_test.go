package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationOn(t *testing.T) {
	emailViolation := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, IsUniqueViolationOn(emailViolation, "students_email_key"))
	assert.True(t, IsUniqueViolationOn(fmt.Errorf("exec failed: %w", emailViolation), "students_email_key"))

	assert.False(t, IsUniqueViolationOn(emailViolation, "courses_pkey"))
	assert.False(t, IsUniqueViolationOn(&pgconn.PgError{Code: "23503", ConstraintName: "students_email_key"}, "students_email_key"))
	assert.False(t, IsUniqueViolationOn(errors.New("plain error"), "students_email_key"))
	assert.False(t, IsUniqueViolationOn(nil, "students_email_key"))
}
