package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrUserExists = errors.New("username or email already taken")

var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrInvalidUser = errors.New("invalid user")
