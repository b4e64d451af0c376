package services

import "errors"

var (
	// ErrUnknownEmail is returned on login with an unregistered email.
	ErrUnknownEmail = errors.New("email not registered")
	// ErrWrongPassword is returned on login with a bad password.
	ErrWrongPassword = errors.New("wrong password")
	// ErrUnknownAuthor is returned when the authoring user does not exist.
	ErrUnknownAuthor = errors.New("author does not exist")
	// ErrUnknownPost is returned when the referenced post does not exist.
	ErrUnknownPost = errors.New("post does not exist")
)
