package services

import (
	"context"
	"time"

	"FashionStoreAPI/internal/model"

	"github.com/google/uuid"
)

type ReceiptStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Receipt, error)
	Create(ctx context.Context, userID int64, reference string, amount float64, description string, date time.Time) (*model.Receipt, error)
}

type ReceiptService struct {
	Receipts ReceiptStore
}

func NewReceiptService(r ReceiptStore) *ReceiptService {
	return &ReceiptService{Receipts: r}
}

func (s *ReceiptService) ListForUser(ctx context.Context, userID int64) ([]model.Receipt, error) {
	return s.Receipts.ListByUser(ctx, userID)
}

// Create records a purchase receipt with a generated reference number.
func (s *ReceiptService) Create(ctx context.Context, userID int64, amount float64, description string, date time.Time) (*model.Receipt, error) {
	return s.Receipts.Create(ctx, userID, uuid.NewString(), amount, description, date)
}
