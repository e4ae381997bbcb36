package user

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Roles recognized by the system. Admins receive every shipment event on
// the broadcast admins topic.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var (
	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is an account that owns shipments and authenticates against the API.
type User struct {
	id           kernel.ID
	name         string
	email        string
	passwordHash string
	role         string

	isConstructed bool
}

// NewUser creates a User awaiting persistence. The password hash must be
// produced by the auth collaborator; the domain never sees plaintext.
func NewUser(name, email, passwordHash, role string) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.ID, name, email, passwordHash, role string) (*User, error) {
	u, err := NewUser(name, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier once.
func (u *User) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("user identifier is already assigned"))
	}
	u.id = id
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.ID {
	return u.id
}

// Name returns the user display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user email, lowercased.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user role.
func (u *User) Role() string {
	return u.role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role string) error {
	switch role {
	case RoleCustomer, RoleAdmin:
		u.role = role
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}
