package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row followed by its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order total is out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	itemModels := make([]*model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		itemModels = append(itemModels, &model.OrderItemModel{
			OrderID:         orderM.ID,
			ServiceID:       item.ServiceID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	if len(itemModels) > 0 {
		if err := repo.db.WithContext(ctx).Omit("Service").Create(&itemModels).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrServiceNotFound
			}
			if isOutOfRange(err) {
				return domainerrors.ErrValidationFailed.WithDetails("order item quantity is out of range")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
		}
	}

	order.ID = orderM.ID
	order.OrderDate = orderM.OrderDate
	for i, itemM := range itemModels {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindByID retrieves an order with its items and their service names.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.withItems(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the orders of a user, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.withItems(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) withItems(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.Service")
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		item := &entity.OrderItem{
			ID:              itemM.ID,
			OrderID:         itemM.OrderID,
			ServiceID:       itemM.ServiceID,
			Quantity:        itemM.Quantity,
			PriceAtPurchase: itemM.PriceAtPurchase,
		}
		if itemM.Service != nil {
			item.ServiceName = itemM.Service.Name
		}
		items = append(items, item)
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryDate:    data.DeliveryDate,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		OrderDate:       data.OrderDate,
		Items:           items,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DeliveryAddress: data.DeliveryAddress,
		DeliveryDate:    data.DeliveryDate,
		TotalAmount:     data.TotalAmount,
		Status:          string(data.Status),
		OrderDate:       data.OrderDate,
	}
}
