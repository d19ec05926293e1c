package handler

import (
	"time"

	"servicehub/internal/domain/constants"
	"servicehub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	UserID         int64     `json:"user_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DefaultAddress string    `json:"default_address"`
	RoleID         int16     `json:"role_id"`
	RoleName       string    `json:"role_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		UserID:         u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		DefaultAddress: u.DefaultAddress,
		RoleID:         int16(u.Role),
		RoleName:       u.Role.String(),
		CreatedAt:      u.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return out
}

// LoginResponse carries the account and its access token.
type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// ServiceResponse is a catalog item. Price is encoded as a decimal string.
type ServiceResponse struct {
	ServiceID    int64           `json:"service_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Duration     string          `json:"duration"`
	ImageURL     string          `json:"image_url"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name"`
}

func newServiceResponse(s *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ServiceID:    s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		Duration:     s.Duration,
		ImageURL:     s.ImageURL,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
	}
}

func newServiceResponses(services []*entity.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, newServiceResponse(s))
	}

	return out
}

// CategoryResponse is a catalog category.
type CategoryResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

func newCategoryResponse(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{CategoryID: c.ID, CategoryName: c.Name}
}

func newCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}

	return out
}

// ReviewResponse is a review with the joined author and service names when known.
type ReviewResponse struct {
	ReviewID    int64     `json:"review_id"`
	ServiceID   int64     `json:"service_id"`
	UserID      int64     `json:"user_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	FullName    string    `json:"full_name,omitempty"`
	ServiceName string    `json:"service_name,omitempty"`
}

func newReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:    r.ID,
		ServiceID:   r.ServiceID,
		UserID:      r.UserID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		FullName:    r.AuthorName,
		ServiceName: r.ServiceName,
	}
}

func newReviewResponses(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r))
	}

	return out
}

// CartResponse lists the lines of a cart; Items is never null.
type CartResponse struct {
	Items []*CartItemResponse `json:"items"`
}

// CartItemResponse is one cart line joined with its service.
type CartItemResponse struct {
	CartItemID int64           `json:"cart_item_id"`
	ServiceID  int64           `json:"service_id"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Duration   string          `json:"duration"`
	ImageURL   string          `json:"image_url"`
}

func newCartResponse(lines []*entity.CartLine) *CartResponse {
	items := make([]*CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, &CartItemResponse{
			CartItemID: l.CartItemID,
			ServiceID:  l.ServiceID,
			Quantity:   l.Quantity,
			Name:       l.Name,
			Price:      l.Price,
			Duration:   l.Duration,
			ImageURL:   l.ImageURL,
		})
	}

	return &CartResponse{Items: items}
}

// CreateOrderResponse acknowledges a placed order.
type CreateOrderResponse struct {
	Success     bool            `json:"success"`
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderResponse is an order with its frozen item prices.
type OrderResponse struct {
	OrderID         int64                `json:"order_id"`
	DeliveryAddress string               `json:"delivery_address"`
	DeliveryDate    string               `json:"delivery_date"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	Status          string               `json:"status"`
	OrderDate       time.Time            `json:"order_date"`
	Items           []*OrderItemResponse `json:"items"`
}

// OrderItemResponse reports price_at_purchase as price.
type OrderItemResponse struct {
	ServiceID   int64           `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]*OrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, &OrderItemResponse{
				ServiceID:   item.ServiceID,
				ServiceName: item.ServiceName,
				Quantity:    item.Quantity,
				Price:       item.PriceAtPurchase,
			})
		}

		out = append(out, &OrderResponse{
			OrderID:         o.ID,
			DeliveryAddress: o.DeliveryAddress,
			DeliveryDate:    o.DeliveryDate.Format(constants.DeliveryDateLayout),
			TotalAmount:     o.TotalAmount,
			Status:          string(o.Status),
			OrderDate:       o.OrderDate,
			Items:           items,
		})
	}

	return out
}
