package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/auth"
	"shipping/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so login responses never reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginUserResult carries the minted token and the authenticated account.
type LoginUserResult struct {
	Token string
	User  *user.User
}

// LoginUserCommandHandler verifies credentials and mints a JWT access token.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	tokenCfg   auth.Config
}

// NewLoginUserCommandHandler creates a handler for user login.
func NewLoginUserCommandHandler(uowFactory UserUoWFactory, tokenCfg auth.Config) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		tokenCfg:   tokenCfg,
	}
}

// Handle authenticates the user and returns a signed access token.
func (h LoginUserCommandHandler) Handle(ctx context.Context, command LoginUserCommand) (LoginUserResult, error) {
	if err := command.Validate(); err != nil {
		return LoginUserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginUserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginUserResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginUserResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return LoginUserResult{}, err
	}

	if !auth.CheckPassword(account.PasswordHash(), command.Password()) {
		return LoginUserResult{}, ErrInvalidCredentials
	}

	token, err := auth.MintAccessToken(h.tokenCfg, time.Now(), account.ID().Int64(), account.Role())
	if err != nil {
		return LoginUserResult{}, err
	}

	return LoginUserResult{Token: token, User: account}, nil
}
