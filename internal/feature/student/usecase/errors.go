// Package usecase implements the admin student directory.
package usecase

import "errors"

// ErrInvalidStudentNumber is returned for a student_number filter that does not parse.
var ErrInvalidStudentNumber = errors.New("invalid student number")
