// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the service
// layer and the HTML pages.
//
// Keeping them in one place keeps wording consistent. Storage details never
// appear in any of them.
package app

// Signup validation messages, one per rule.
const (
	MsgUsernameTooShort     = "Username must be at least 3 characters long"
	MsgUsernameInvalidChars = "Username can only contain letters, numbers, and underscores"
	MsgInvalidEmail         = "Please enter a valid email address"
	MsgPasswordTooShort     = "Password must be at least 6 characters long"
	MsgPasswordTooLong      = "Password must be at most 72 bytes long"
	MsgPasswordsMismatch    = "Passwords do not match"
)

// Signup conflict messages.
const (
	MsgUsernameAndEmailTaken = "Both username and email address are already registered. Please choose different credentials."
	MsgUsernameTaken         = "Username already exists. Please choose a different username."
	MsgEmailTaken            = "Email address is already registered. Please use a different email or try logging in."

	// MsgAlreadyRegistered is used when the unique constraint fires at insert
	// time after the pre-checks passed.
	MsgAlreadyRegistered = "This username or email is already registered. Please try different credentials."
)

const (
	MsgRegistrationFailed  = "Registration failed due to a system error. Please try again later."
	MsgRegistrationSuccess = "Registration successful! You can now login to your account."
)

// Login messages.
const (
	MsgMissingCredentials = "Please enter both username and password"
	MsgInvalidCredentials = "Invalid username or password"
	MsgLoginFailed        = "Login failed. Please try again."
)

const (
	MsgDashboardUnavailable = "Unable to load users. Please try again later."
	MsgNoUsersFound         = "No users found"
	MsgServiceUnavailable   = "Service temporarily unavailable. Please try again later."

	// MsgDatabaseUnavailable is the only text shown when the credential store
	// cannot be reached at startup.
	MsgDatabaseUnavailable = "database connection failed, please try again later"
)
