package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const minPasswordLength = 8

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsTooShort = errs.NewValueIsInvalidErrorWithCause("password",
		errors.New("password must be at least 8 characters"))
)

// RegisterUserCommand represents a request to create a user account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. An empty role
// defaults to customer.
func NewRegisterUserCommand(name, email, password, role string) (RegisterUserCommand, error) {
	if role == "" {
		role = user.RoleCustomer
	}

	command := RegisterUserCommand{
		name:  name,
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPassword(password); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c *RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name.
func (c *RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the account email.
func (c *RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password; it is hashed by the handler and
// never persisted.
func (c *RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c *RegisterUserCommand) Role() string {
	return c.role
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(strings.TrimSpace(password)) < minPasswordLength {
		return ErrPasswordIsTooShort
	}
	c.password = password
	return nil
}
