package dto

import "retail/internal/domain"

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Currency    *string  `json:"currency"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	InStock     *bool    `json:"in_stock"`
}

// ToDomain applies the creation defaults: currency SYP, in stock. An empty
// image_url is dropped.
func (r CreateProductRequest) ToDomain() domain.Product {
	p := domain.Product{
		Title:       r.Title,
		Description: r.Description,
		Currency:    domain.DefaultCurrency,
		Category:    r.Category,
		InStock:     true,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Currency != nil {
		p.Currency = *r.Currency
	}
	if r.ImageURL != nil && *r.ImageURL != "" {
		p.ImageURL = r.ImageURL
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	InStock     *bool    `json:"in_stock"`
}

func (r UpdateProductRequest) ToPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url,omitempty"`
	InStock     bool    `json:"in_stock"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		CreatedAt:   FormatTimestamp(p.CreatedAt),
		UpdatedAt:   FormatTimestamp(p.UpdatedAt),
	}
}

func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
