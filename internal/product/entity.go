// AngelaMos | 2026
// entity.go

package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Category       string             `bson:"category"`
	Description    string             `bson:"description"`
	Specifications string             `bson:"specifications"`
	Image          string             `bson:"image,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

const (
	CategoryRice   = "rice"
	CategoryWheat  = "wheat"
	CategorySpices = "spices"
	CategoryPulses = "pulses"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryRice, CategoryWheat, CategorySpices, CategoryPulses:
		return true
	}
	return false
}
