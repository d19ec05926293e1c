package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID returns the cart owned by the user.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// GetOrCreate inserts the cart unless one exists, then reads it back.
// The unique user_id constraint makes concurrent callers converge on one row.
func (repo *cartRepository) GetOrCreate(ctx context.Context, userID int64) (*entity.Cart, error) {
	cartM := &model.CartModel{UserID: userID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cartM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return repo.FindByUserID(ctx, userID)
}

// AddItem upserts the (cart, service) item, adding quantity to an existing row.
func (repo *cartRepository) AddItem(ctx context.Context, cartID, serviceID int64, quantity int) (*entity.CartItem, error) {
	itemM := &model.CartItemModel{
		CartID:    cartID,
		ServiceID: serviceID,
		Quantity:  quantity,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "cart_id"}, {Name: "service_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity": gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				}),
			},
			clause.Returning{},
		).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrServiceNotFound
		}
		if isOutOfRange(err) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("cart item quantity is out of range")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return &entity.CartItem{
		ID:        itemM.ID,
		CartID:    itemM.CartID,
		ServiceID: itemM.ServiceID,
		Quantity:  itemM.Quantity,
	}, nil
}

// RemoveItem deletes the (cart, service) item if present.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID, serviceID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND service_id = ?", cartID, serviceID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove cart item")
	}

	return nil
}

// Clear deletes every item of the cart.
func (repo *cartRepository) Clear(ctx context.Context, cartID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// ListLines returns the cart items joined with their services.
func (repo *cartRepository) ListLines(ctx context.Context, cartID int64) ([]*entity.CartLine, error) {
	var rows []*model.CartLineRow

	if err := repo.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.id AS cart_item_id, ci.service_id, ci.quantity, s.name, s.price, s.duration, s.image_url").
		Joins("JOIN services AS s ON s.id = ci.service_id").
		Where("ci.cart_id = ?", cartID).
		Order("ci.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, &entity.CartLine{
			CartItemID: row.CartItemID,
			ServiceID:  row.ServiceID,
			Quantity:   row.Quantity,
			Name:       row.Name,
			Price:      row.Price,
			Duration:   row.Duration,
			ImageURL:   row.ImageURL,
		})
	}

	return lines, nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
