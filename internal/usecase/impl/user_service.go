package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// GetUser returns a user by ID.
func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return user, nil
}

// UpdateProfile rewrites the profile fields of a user in one transaction.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || fullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name and email are required")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return mapUserError(err)
		}

		if email != user.Email {
			other, err := userRepo.FindByEmail(ctx, email)
			switch {
			case err == nil && other.ID != user.ID:
				return errors.Wrap(domainerrors.ErrEmailTaken, "email used by another account")
			case err != nil && !errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(err, "failed to look up email")
			}
		}

		user.FullName = fullName
		user.Email = email
		user.Phone = strings.TrimSpace(input.Phone)
		user.DefaultAddress = strings.TrimSpace(input.DefaultAddress)

		if err := userRepo.Update(ctx, user); err != nil {
			return mapUserError(err)
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Int64("user_id", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// ListUsers returns every account ordered by ID.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// DeleteUser removes an account. Its cart, orders and reviews cascade.
func (srv *userService) DeleteUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.Delete(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	srv.log(ctx).Info("User deleted", slog.Int64("user_id", userID))

	return user, nil
}

func mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	}

	return errors.Wrap(err, "user repository")
}
