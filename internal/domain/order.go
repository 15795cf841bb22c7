package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const PaymentMethodCOD = "COD"

const (
	OrderStatusNew       = "new"
	OrderStatusConfirmed = "confirmed"
	OrderStatusOnTheWay  = "on_the_way"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var knownOrderStatuses = map[string]struct{}{
	OrderStatusNew:       {},
	OrderStatusConfirmed: {},
	OrderStatusOnTheWay:  {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// IsKnownOrderStatus reports whether status belongs to the documented
// lifecycle. Unknown statuses are still accepted on update.
func IsKnownOrderStatus(status string) bool {
	_, ok := knownOrderStatuses[status]
	return ok
}

type OrderItem struct {
	ProductID string
	Title     string
	Price     float64
	Quantity  int
}

type Customer struct {
	Name    string
	Phone   string
	City    string
	Address string
	Notes   *string
}

type Order struct {
	ID            string
	Items         []OrderItem
	Customer      Customer
	PaymentMethod string
	Status        string
	TrackingNote  *string
	Total         float64
	Currency      string
	PlacedAt      *time.Time
	UpdatedAt     *time.Time
}

// OrderStatusPatch carries the fields of a status update; nil fields are
// left untouched.
type OrderStatusPatch struct {
	Status       *string
	TrackingNote *string
}

func (p OrderStatusPatch) IsEmpty() bool {
	return p.Status == nil && p.TrackingNote == nil
}

type OrderFilter struct {
	Status string
}

// CalculateTotal sums price*quantity over items using decimal arithmetic.
func CalculateTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}
