package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a credential check request.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to authenticate a user.
func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	if err := errors.Join(
		requireField("email", email),
		requireField("password", password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return LoginUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the account email.
func (c *LoginUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c *LoginUserCommand) Password() string {
	return c.password
}

func requireField(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
