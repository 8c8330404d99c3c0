package domain

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrInvalidArgument   = errors.New("invalid argument")

	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrChannelNotFound      = errors.New("channel not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("access forbidden")
	ErrProfessorNotApproved = errors.New("professor not approved")

	// ErrGateway wraps any failure talking to the assistant backend.
	ErrGateway = errors.New("assistant gateway error")
	// ErrStorage wraps durable storage read/write failures.
	ErrStorage = errors.New("storage error")
)
