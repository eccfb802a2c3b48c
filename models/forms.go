package models

// RegistrationForm carries the raw, untrusted signup submission.
type RegistrationForm struct {
	Username        string `validate:"required,min=3,username"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6,bcryptmax"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// Credentials carries a raw login submission.
type Credentials struct {
	Username string
	Password string
}
