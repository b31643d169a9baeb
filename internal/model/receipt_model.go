package model

import "time"

type Receipt struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Reference   string    `json:"reference"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
