package repo

import "errors"

// ErrProductNotFound is returned when no product exists for a codigo.
var ErrProductNotFound = errors.New("product not found")

// ErrUserNotFound is returned when a username does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
