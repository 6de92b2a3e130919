// Package repository holds the MySQL data access for halls, their saved
// layouts and the seats materialized from them.
package repository

import "errors"

// ErrForbidden is returned when a caller touches a hall owned by someone
// else.  Handlers translate it into 403.
var ErrForbidden = errors.New("forbidden")
