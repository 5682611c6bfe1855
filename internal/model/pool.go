package model

import "time"

// Pool is a betting group. The backend generates Code when the pool is
// created and never changes it afterwards.
type Pool struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   *string   `json:"ownerId,omitempty"`
	Owner     *User     `json:"owner,omitempty"`
}
