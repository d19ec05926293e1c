// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates a customer account together with its empty cart.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name and email are required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	// bcrypt is slow, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		FullName:       fullName,
		Email:          email,
		PasswordHash:   hashedPassword,
		Phone:          strings.TrimSpace(input.Phone),
		DefaultAddress: strings.TrimSpace(input.DefaultAddress),
		Role:           entity.RoleCustomer,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if _, err := repoFactory.CartRepo().GetOrCreate(ctx, newUser.ID); err != nil {
			return errors.Wrap(err, "failed to create cart during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", newUser.ID))

	return newUser, nil
}

// Login verifies the credentials and signs an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// IdentifyByToken resolves the caller from a bearer access token.
func (srv *authService) IdentifyByToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid access token")
	}

	return srv.resolve(ctx, func() (*entity.User, error) {
		return srv.userRepo.FindByID(ctx, claims.UserID)
	})
}

// IdentifyByEmail resolves the caller from the user-email header or query.
func (srv *authService) IdentifyByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "empty caller email")
	}

	return srv.resolve(ctx, func() (*entity.User, error) {
		return srv.userRepo.FindByEmail(ctx, email)
	})
}

func (srv *authService) resolve(ctx context.Context, find func() (*entity.User, error)) (*entity.User, error) {
	user, err := find()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "caller no longer exists")
		}

		srv.log(ctx).Error("Failed to resolve caller", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve caller")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
