package dto

import "retail/internal/domain"

type OrderItemRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  *int     `json:"quantity" validate:"required,gte=1"`
}

type CustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required"`
	City    string  `json:"city" validate:"required"`
	Address string  `json:"address" validate:"required"`
	Notes   *string `json:"notes"`
}

type PlaceOrderRequest struct {
	Items         []OrderItemRequest `json:"items" validate:"dive"`
	Customer      CustomerRequest    `json:"customer"`
	PaymentMethod *string            `json:"payment_method"`
}

// PaymentMethodOrDefault returns the requested payment method, COD when the
// field was omitted.
func (r PlaceOrderRequest) PaymentMethodOrDefault() string {
	if r.PaymentMethod == nil {
		return domain.PaymentMethodCOD
	}
	return *r.PaymentMethod
}

func (r PlaceOrderRequest) ToItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		item := domain.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
		}
		if it.Price != nil {
			item.Price = *it.Price
		}
		if it.Quantity != nil {
			item.Quantity = *it.Quantity
		}
		items = append(items, item)
	}
	return items
}

func (r PlaceOrderRequest) ToCustomer() domain.Customer {
	return domain.Customer{
		Name:    r.Customer.Name,
		Phone:   r.Customer.Phone,
		City:    r.Customer.City,
		Address: r.Customer.Address,
		Notes:   r.Customer.Notes,
	}
}

type UpdateOrderStatusRequest struct {
	Status       *string `json:"status" validate:"omitempty,min=1"`
	TrackingNote *string `json:"tracking_note"`
}

func (r UpdateOrderStatusRequest) ToPatch() domain.OrderStatusPatch {
	return domain.OrderStatusPatch{
		Status:       r.Status,
		TrackingNote: r.TrackingNote,
	}
}

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CustomerResponse struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Notes   *string `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Items         []OrderItemResponse `json:"items"`
	Customer      CustomerResponse    `json:"customer"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	TrackingNote  *string             `json:"tracking_note,omitempty"`
	Total         float64             `json:"total"`
	Currency      string              `json:"currency"`
	PlacedAt      string              `json:"placed_at,omitempty"`
	UpdatedAt     string              `json:"updated_at,omitempty"`
}

func NewOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderResponse{
		ID:    o.ID,
		Items: items,
		Customer: CustomerResponse{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			City:    o.Customer.City,
			Address: o.Customer.Address,
			Notes:   o.Customer.Notes,
		},
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		TrackingNote:  o.TrackingNote,
		Total:         o.Total,
		Currency:      o.Currency,
		PlacedAt:      FormatTimestamp(o.PlacedAt),
		UpdatedAt:     FormatTimestamp(o.UpdatedAt),
	}
}

func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
