package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"
	"time"

	"FashionStoreAPI/internal/model"
	"FashionStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type memReceiptStore struct {
	receipts []model.Receipt
	nextID   int64
}

func (m *memReceiptStore) ListByUser(ctx context.Context, userID int64) ([]model.Receipt, error) {
	out := []model.Receipt{}
	for _, r := range m.receipts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memReceiptStore) Create(ctx context.Context, userID int64, reference string, amount float64, description string, date time.Time) (*model.Receipt, error) {
	m.nextID++
	rec := model.Receipt{
		ID:          m.nextID,
		UserID:      userID,
		Reference:   reference,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().Add(time.Duration(m.nextID) * time.Millisecond),
	}
	m.receipts = append(m.receipts, rec)
	out := rec
	return &out, nil
}

func newProfileApp(store *memUserStore, receipts *memReceiptStore) *echo.Echo {
	e := echo.New()
	registerUserRoutes(e, services.NewUserService(store))
	registerReceiptRoutes(e, services.NewReceiptService(receipts))
	return e
}

func TestGetAndUpdateProfile(t *testing.T) {
	store := newMemUserStore()
	u, err := store.Create(context.Background(), "Ann", "ann@x.com", "hash", "User")
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	e := newProfileApp(store, &memReceiptStore{})

	rec := doJSON(t, e, http.MethodGet, "/api/user/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var profile struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.ID != u.ID || profile.Name != "Ann" || profile.Email != "ann@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	rec = doJSON(t, e, http.MethodPut, "/api/user/1", "", map[string]string{
		"name": "Ann B", "email": "annb@x.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/api/user/1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get after update: expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Name != "Ann B" || profile.Email != "annb@x.com" {
		t.Fatalf("update not applied: %+v", profile)
	}
}

func TestProfileNotFound(t *testing.T) {
	e := newProfileApp(newMemUserStore(), &memReceiptStore{})

	if rec := doJSON(t, e, http.MethodGet, "/api/user/99", "", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", rec.Code)
	}
	body := map[string]string{"name": "X", "email": "x@x.com"}
	if rec := doJSON(t, e, http.MethodPut, "/api/user/99", "", body); rec.Code != http.StatusNotFound {
		t.Fatalf("update: expected 404, got %d", rec.Code)
	}
	if rec := doJSON(t, e, http.MethodGet, "/api/user/abc", "", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400, got %d", rec.Code)
	}
}

func TestReceipts(t *testing.T) {
	store := newMemUserStore()
	if _, err := store.Create(context.Background(), "Ann", "ann@x.com", "hash", "User"); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	e := newProfileApp(store, &memReceiptStore{})

	// empty list first
	rec := doJSON(t, e, http.MethodGet, "/api/user/1/receipts", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty list, got %s", body)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/user/1/receipts", "", map[string]interface{}{
		"amount": 59.90, "description": "linen shirt", "date": "2026-08-30",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created model.Receipt
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Reference == "" || created.Amount != 59.90 {
		t.Fatalf("unexpected receipt: %+v", created)
	}

	rec = doJSON(t, e, http.MethodPost, "/api/user/1/receipts", "", map[string]interface{}{
		"amount": 19.90, "description": "socks", "date": "2026-08-31",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create second: expected 201, got %d", rec.Code)
	}

	// newest first
	rec = doJSON(t, e, http.MethodGet, "/api/user/1/receipts", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []model.Receipt
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 || list[0].Description != "socks" {
		t.Fatalf("expected newest-first list of 2, got %+v", list)
	}

	// invalid payloads
	rec = doJSON(t, e, http.MethodPost, "/api/user/1/receipts", "", map[string]interface{}{
		"amount": 0, "description": "free", "date": "2026-08-31",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero amount: expected 400, got %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodPost, "/api/user/1/receipts", "", map[string]interface{}{
		"amount": 5, "description": "x", "date": "31-08-2026",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", rec.Code)
	}
}
