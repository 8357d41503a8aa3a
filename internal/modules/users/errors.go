package users

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("a user with this email already exists")
	ErrUsernameTaken   = errors.New("a user with this username already exists")
	ErrInvalidUsername = errors.New("username may contain only letters, digits and @/./+/-/_")
	ErrWrongPassword   = errors.New("current password is incorrect")
	ErrAvatarRequired  = errors.New("avatar is required")
)
