// AngelaMos | 2026
// entity.go

package subscriber

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber records a newsletter signup. Created once, never updated,
// never deleted through any exposed interface.
type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}
