package repository

import (
	"context"
	"time"

	"FashionStoreAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReceiptRepository struct {
	DB *pgxpool.Pool
}

func NewReceiptRepository(db *pgxpool.Pool) *ReceiptRepository {
	return &ReceiptRepository{DB: db}
}

func (r *ReceiptRepository) ListByUser(ctx context.Context, userID int64) ([]model.Receipt, error) {
	query := `SELECT id, user_id, reference, amount, description, date, created_at
			FROM receipts
			WHERE user_id=$1
			ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Receipt{}
	for rows.Next() {
		var rec model.Receipt
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Reference, &rec.Amount, &rec.Description, &rec.Date, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *ReceiptRepository) Create(ctx context.Context, userID int64, reference string, amount float64, description string, date time.Time) (*model.Receipt, error) {
	rec := model.Receipt{
		UserID:      userID,
		Reference:   reference,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
	query := `INSERT INTO receipts (user_id, reference, amount, description, date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`
	if err := r.DB.QueryRow(ctx, query, userID, reference, amount, description, date, time.Now()).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
