package auth

import "errors"

var ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
