package user

import "errors"

// The error texts below are part of the public API contract and must not be
// reworded; clients match on them.
var (
	ErrEmailTaken           = errors.New("There is a user with that email already")
	ErrUserNotFound         = errors.New("User Not Found")
	ErrWrongPassword        = errors.New("Wrong password")
	ErrVerificationNotFound = errors.New("Verification not found.")
	ErrCreateAccountFailed  = errors.New("account creation failed")
	ErrEditProfileFailed    = errors.New("could not update profile")
	ErrInvalidRole          = errors.New("invalid user role")
)
