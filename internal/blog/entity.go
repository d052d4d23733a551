// AngelaMos | 2026
// entity.go

package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost mirrors the product lifecycle: created and mutated only by
// admins, with a best-effort image cleanup when deleted. Date is a
// display string, not a parsed timestamp.
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Excerpt   string             `bson:"excerpt"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	Date      string             `bson:"date"`
	Category  string             `bson:"category"`
	ReadTime  int                `bson:"readTime"`
	Image     string             `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
