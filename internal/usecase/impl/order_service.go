package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	receiptRepo repository.ReceiptRepository
	publisher   service.EventPublisher
	encoder     service.ReceiptEncoder
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	ReceiptRepo repository.ReceiptRepository
	Publisher   service.EventPublisher
	Encoder     service.ReceiptEncoder
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		receiptRepo: params.ReceiptRepo,
		publisher:   params.Publisher,
		encoder:     params.Encoder,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// CreateOrder validates the checkout, freezes catalog prices, stores the order and empties the cart.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	// 1. Validate the request before touching the database
	items, err := normalizeOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSpace(input.DeliveryAddress)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery_address is required")
	}

	deliveryDate, err := parseDeliveryDate(input.DeliveryDate, srv.now())
	if err != nil {
		return nil, err
	}

	// 2. Admins never place orders
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, mapUserError(err)
	}
	if user.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminOrderForbidden, "admin cannot place orders")
	}

	// 3. Price the lines and persist
	order := &entity.Order{
		UserID:          user.ID,
		DeliveryAddress: address,
		DeliveryDate:    deliveryDate,
		Status:          entity.OrderStatusNew,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ServiceID)
		}

		services, err := repoFactory.ServiceRepo().FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load ordered services")
		}

		orderItems, err := priceOrderItems(items, services)
		if err != nil {
			return err
		}

		order.Items = orderItems
		order.TotalAmount = entity.OrderTotal(orderItems)
		if order.TotalAmount.GreaterThan(entity.MaxOrderTotal) {
			return domainerrors.ErrValidationFailed.WithDetails("order total exceeds " + entity.MaxOrderTotal.String())
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.FindByUserID(ctx, user.ID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}

		return errors.Wrap(cartRepo.Clear(ctx, cart.ID), "failed to clear cart after checkout")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Int64("user_id", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.String("total_amount", order.TotalAmount.String()),
	)

	// 4. Publish after commit; the order stands even if the event is lost
	srv.publishOrderPlaced(ctx, order)

	return &usecase.CreateOrderOutput{
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
	}, nil
}

func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	placedAt := order.OrderDate
	if placedAt.IsZero() {
		placedAt = srv.now()
	}

	event := &service.OrderPlacedEvent{
		RequestID:   deliverycontext.RequestIDFrom(ctx),
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		PlacedAt:    placedAt.Format(time.RFC3339),
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order placed event",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

// ListOrders returns the user's orders, newest first, with their frozen items.
func (srv *orderService) ListOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetReceipt returns the stored receipt of the order, encoding and storing it when the worker has not yet.
func (srv *orderService) GetReceipt(ctx context.Context, userID, orderID int64) (*entity.Receipt, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err)
	}

	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	receipt, err := srv.receiptRepo.FindByOrderID(ctx, orderID)
	if err == nil {
		return receipt, nil
	}
	if !errors.Is(err, repository.ErrReceiptNotFound) {
		return nil, errors.Wrap(err, "failed to find receipt")
	}

	receipt, err = srv.encoder.EncodeReceipt(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode receipt")
	}

	if err := srv.receiptRepo.Save(ctx, receipt); err != nil {
		srv.log(ctx).Warn("Failed to store receipt", slog.Int64("order_id", orderID), slog.Any("error", err))
	}

	return receipt, nil
}

func quantityRangeDetail(field string) string {
	return field + " must be between 1 and " + strconv.Itoa(usecase.MaxLineQuantity)
}

func normalizeOrderItems(items []usecase.OrderItemInput) ([]usecase.OrderItemInput, error) {
	if len(items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyOrder)
	}

	normalized := make([]usecase.OrderItemInput, 0, len(items))
	for i, item := range items {
		if item.ServiceID <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("items[" + strconv.Itoa(i) + "].service_id is required")
		}

		if item.Quantity == 0 {
			item.Quantity = usecase.DefaultCartQuantity
		}
		if item.Quantity < 0 || item.Quantity > usecase.MaxLineQuantity {
			return nil, domainerrors.ErrValidationFailed.WithDetails(quantityRangeDetail("items[" + strconv.Itoa(i) + "].quantity"))
		}

		normalized = append(normalized, item)
	}

	return normalized, nil
}

// priceOrderItems copies the catalog price into every line.
// A client price that disagrees with the catalog rejects the whole order.
func priceOrderItems(items []usecase.OrderItemInput, services map[int64]*entity.Service) ([]*entity.OrderItem, error) {
	orderItems := make([]*entity.OrderItem, 0, len(items))

	for _, item := range items {
		svc, ok := services[item.ServiceID]
		if !ok {
			return nil, domainerrors.ErrServiceNotFound.WithDetails("service " + strconv.FormatInt(item.ServiceID, 10) + " does not exist")
		}

		if item.Price != nil && !item.Price.Equal(svc.Price) {
			return nil, domainerrors.ErrPriceMismatch.WithDetails(
				"service " + strconv.FormatInt(item.ServiceID, 10) + " costs " + svc.Price.String(),
			)
		}

		orderItems = append(orderItems, &entity.OrderItem{
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: svc.Price,
		})
	}

	return orderItems, nil
}

// parseDeliveryDate accepts a calendar date or an RFC3339 timestamp and rejects days before today.
// Both the date and "today" are taken in the location of now. An RFC3339 timestamp is moved
// into that location first, so a client's local midnight may land on the previous server day.
func parseDeliveryDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("delivery_date is required")
	}

	loc := now.Location()

	date, err := time.ParseInLocation(constants.DeliveryDateLayout, raw, loc)
	if err != nil {
		ts, rfcErr := time.Parse(time.RFC3339, raw)
		if rfcErr != nil {
			return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("delivery_date must be YYYY-MM-DD or RFC3339")
		}

		ts = ts.In(loc)
		date = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(startOfToday) {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidDeliveryDate)
	}

	return date, nil
}

func mapOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
	}

	return errors.Wrap(err, "order repository")
}
