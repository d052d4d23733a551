// AngelaMos | 2026
// dto.go

package subscriber

import (
	"time"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SubscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func ToSubscriberResponse(s *Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:        s.ID.Hex(),
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
