package domain

import "time"

const DefaultCurrency = "SYP"

type Product struct {
	ID          string
	Title       string
	Description *string
	Price       float64
	Currency    string
	Category    string
	ImageURL    *string
	InStock     bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// ProductPatch holds the fields supplied in a partial update. A nil field is
// left untouched in storage.
type ProductPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Currency    *string
	Category    *string
	ImageURL    *string
	InStock     *bool
}

func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Price == nil &&
		p.Currency == nil &&
		p.Category == nil &&
		p.ImageURL == nil &&
		p.InStock == nil
}

// ProductFilter narrows the catalog listing. Out-of-stock products are
// always excluded.
type ProductFilter struct {
	Query    string
	Category string
}
