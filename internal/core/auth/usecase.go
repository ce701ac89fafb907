package auth

import (
	"context"
	"fmt"
	"strings"

	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
	"shopapi.app/pkg/validation"
)

const invalidCredentials = "invalid credentials"

type UseCase struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger ports.Logger
}

type UseCaseDependencies struct {
	UserRepo ports.UserRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenIssuer
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.UserRepo == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Hasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.Tokens == nil {
		return nil, errors.NewValidationError("token issuer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		users:  deps.UserRepo,
		hasher: deps.Hasher,
		tokens: deps.Tokens,
		logger: deps.Logger,
	}, nil
}

func (uc *UseCase) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if err := req.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email := validation.NormalizeEmail(req.Email)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewAlreadyExistsError("user already exists")
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &ports.UserData{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         string(RoleUser),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	uc.logger.Info("User registered", ports.F("userID", user.ID))
	return uc.newSession(user)
}

func (uc *UseCase) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := req.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	user, err := uc.users.FindByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(invalidCredentials)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := uc.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		uc.logger.Debug("Password mismatch", ports.F("userID", user.ID))
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	return uc.newSession(user)
}

// Authenticate verifies an access token and returns its claims
func (uc *UseCase) Authenticate(token string) (*ports.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewUnauthorizedError("not authorized, no token")
	}

	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.Wrap(errors.UnauthorizedError, "not authorized, token failed", err)
	}
	return claims, nil
}

func (uc *UseCase) Me(ctx context.Context, userID string) (*User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	return fromPortsUser(user), nil
}

func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	if name, ok := validation.TrimAndValidate(update.Name); ok {
		user.Name = name
	}
	if phone, ok := validation.TrimAndValidate(update.Phone); ok {
		user.Phone = phone
	}
	if address, ok := validation.TrimAndValidate(update.Address); ok {
		user.Address = address
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %s: %w", userID, err)
	}
	return fromPortsUser(user), nil
}

func (uc *UseCase) newSession(user *ports.UserData) (*Session, error) {
	token, err := uc.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, User: fromPortsUser(user)}, nil
}

func fromPortsUser(data *ports.UserData) *User {
	return &User{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Role:      Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
