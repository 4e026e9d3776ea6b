package domain

import "errors"

var ErrUnauthenticated = errors.New("not authenticated")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrRequestNotFound = errors.New("print request not found")
var ErrDecode = errors.New("malformed server response")
