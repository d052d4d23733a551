// AngelaMos | 2026
// dto.go

package product

import (
	"time"
)

type CreateProductRequest struct {
	Name           string `json:"name"           validate:"required,min=1,max=200"`
	Category       string `json:"category"       validate:"required,oneof=rice wheat spices pulses"`
	Description    string `json:"description"    validate:"required,min=1"`
	Specifications string `json:"specifications" validate:"required,min=1"`
	Image          string `json:"image"          validate:"omitempty,startswith=/uploads/"`
}

type UpdateProductRequest struct {
	Name           *string `json:"name,omitempty"           validate:"omitempty,min=1,max=200"`
	Category       *string `json:"category,omitempty"       validate:"omitempty,oneof=rice wheat spices pulses"`
	Description    *string `json:"description,omitempty"    validate:"omitempty,min=1"`
	Specifications *string `json:"specifications,omitempty" validate:"omitempty,min=1"`
	Image          *string `json:"image,omitempty"          validate:"omitempty,startswith=/uploads/"`
}

// ProductResponse is the public shape: the store's internal _id becomes
// the id field and nothing internal leaks alongside it.
type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Specifications string    `json:"specifications"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToProductResponse(p *Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		Specifications: p.Specifications,
		Image:          p.Image,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}
