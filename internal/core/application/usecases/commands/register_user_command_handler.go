package commands

import (
	"context"

	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/auth"
)

// RegisterUserCommandHandler creates user accounts with bcrypt-hashed
// passwords. Email uniqueness is enforced by storage.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new account. A taken email surfaces as
// errs.ErrObjectAlreadyExists from the repository.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(command.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(command.Name(), command.Email(), passwordHash, command.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
