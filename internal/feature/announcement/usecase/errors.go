// Package usecase implements the business logic for the announcement feature.
package usecase

import "errors"

// ErrInvalidDepartment is returned for a department outside the fixed set.
var ErrInvalidDepartment = errors.New("invalid department")
