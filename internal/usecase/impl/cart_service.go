package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		cartRepo:  cartRepo,
		logger:    logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// AddToCart adds quantity units of a service to the user's cart, creating the cart when needed.
func (srv *cartService) AddToCart(ctx context.Context, userID, serviceID int64, quantity int) error {
	if quantity == 0 {
		quantity = usecase.DefaultCartQuantity
	}
	if quantity < 0 || quantity > usecase.MaxLineQuantity {
		return domainerrors.ErrValidationFailed.WithDetails(quantityRangeDetail("quantity"))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapUserError(err)
		}

		if user.IsAdmin() {
			return errors.Wrap(domainerrors.ErrAdminCartForbidden, "admin cannot hold a cart")
		}

		if _, err := repoFactory.ServiceRepo().FindByID(ctx, serviceID); err != nil {
			return mapCatalogError(err)
		}

		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to get or create cart")
		}

		item, err := cartRepo.AddItem(ctx, cart.ID, serviceID, quantity)
		if err != nil {
			return errors.Wrap(err, "failed to add cart item")
		}

		srv.log(ctx).Debug("Cart item upserted",
			slog.Int64("cart_id", cart.ID),
			slog.Int64("service_id", serviceID),
			slog.Int("quantity", item.Quantity),
		)

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add to cart", slog.Int64("user_id", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute add to cart transaction")
	}

	return nil
}

// RemoveFromCart deletes a service from the user's cart. A missing cart or item is a no-op.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID, serviceID int64) error {
	return srv.withCart(ctx, userID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		return errors.Wrap(cartRepo.RemoveItem(ctx, cart.ID, serviceID), "failed to remove cart item")
	})
}

// ClearCart empties the user's cart. A missing cart is a no-op.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) error {
	return srv.withCart(ctx, userID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		return errors.Wrap(cartRepo.Clear(ctx, cart.ID), "failed to clear cart")
	})
}

func (srv *cartService) withCart(ctx context.Context, userID int64, fn func(repository.CartRepository, *entity.Cart) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserID(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}

		return fn(cartRepo, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart", slog.Int64("user_id", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute cart transaction")
	}

	return nil
}

// GetCart returns the lines of the user's cart, empty when there is no cart.
func (srv *cartService) GetCart(ctx context.Context, userID int64) ([]*entity.CartLine, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return []*entity.CartLine{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	lines, err := srv.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	if lines == nil {
		lines = []*entity.CartLine{}
	}

	return lines, nil
}
