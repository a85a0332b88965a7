// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// userView is the wire shape of an account. The credential hash never appears.
type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u *entity.User) *userView {
	return &userView{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductView(p *entity.Product) *productView {
	return &productView{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       entity.FormatAmount(p.Price),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}

	return views
}

type cartLineView struct {
	ItemID   string       `json:"item_id"`
	Quantity int          `json:"quantity"`
	Subtotal string       `json:"subtotal"`
	Product  *productView `json:"product"`
}

type cartView struct {
	Items []*cartLineView `json:"items"`
	Total string          `json:"total"`
}

func newCartView(view *usecase.CartView) *cartView {
	items := make([]*cartLineView, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, &cartLineView{
			ItemID:   line.Item.ID.String(),
			Quantity: line.Item.Quantity,
			Subtotal: entity.FormatAmount(line.Subtotal()),
			Product:  newProductView(line.Product),
		})
	}

	return &cartView{
		Items: items,
		Total: view.Total,
	}
}
