package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"dealerdesk-backend/internal/database"
	"dealerdesk-backend/internal/models"
	"dealerdesk-backend/internal/numbering"
	"dealerdesk-backend/internal/retention"
)

// ReceiptHandler serves one sequential receipt book. The plain receipt book
// and the down payment book share the same shape and differ only in their
// table, counter floor, and retention window, so both are instances of this
// handler.
type ReceiptHandler struct {
	db     database.Service
	table  string
	label  string
	floor  int64
	window retention.Window
}

// NewReceiptHandler creates a handler for the named receipt table. table must
// be a trusted identifier, never user input.
func NewReceiptHandler(db database.Service, table, label string, floor int64, window retention.Window) *ReceiptHandler {
	return &ReceiptHandler{db: db, table: table, label: label, floor: floor, window: window}
}

// Next returns the receipt number the next save will receive.
func (h *ReceiptHandler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var max *int64
	query := fmt.Sprintf(`SELECT MAX(receipt_no) FROM %s`, h.table)
	if err := pool.QueryRow(ctx, query).Scan(&max); err != nil {
		log.Printf("Failed to read %s counter: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch next number")
		return
	}

	JSON(w, http.StatusOK, map[string]int64{
		"nextNumber": numbering.NextSimple(max, h.floor),
	})
}

// Months lists the distinct YYYY-MM months that still have receipts, newest
// first.
func (h *ReceiptHandler) Months(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	query := fmt.Sprintf(`
		SELECT DISTINCT substring(date from 1 for 7) AS month
		FROM %s
		ORDER BY month DESC
	`, h.table)

	rows, err := pool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to list %s months: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch months")
		return
	}
	defer rows.Close()

	months := []string{}
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch months")
			return
		}
		months = append(months, m)
	}

	JSON(w, http.StatusOK, map[string][]string{"months": months})
}

// List returns receipts, newest number first. With ?month=YYYY-MM the whole
// month is returned; without it the list is capped at 500 rows.
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	query := fmt.Sprintf(`
		SELECT receipt_no, date, customer_name, amount, payment_mode, hp_financier,
		       model, created_at
		FROM %s
	`, h.table)
	args := []interface{}{}
	if month := r.URL.Query().Get("month"); month != "" {
		query += ` WHERE substring(date from 1 for 7) = $1 ORDER BY receipt_no DESC`
		args = append(args, month)
	} else {
		query += ` ORDER BY receipt_no DESC LIMIT 500`
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Failed to list %s entries: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch receipts")
		return
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		var rec models.Receipt
		if err := rows.Scan(&rec.ReceiptNo, &rec.Date, &rec.CustomerName, &rec.Amount,
			&rec.PaymentMode, &rec.HPFinancier, &rec.Model, &rec.CreatedAt); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch receipts")
			return
		}
		receipts = append(receipts, rec)
	}

	JSON(w, http.StatusOK, map[string]interface{}{"receipts": receipts})
}

// Create allocates the next receipt number and saves the receipt in a single
// transaction, sweeping entries past the retention window on the way out.
func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Printf("Failed to begin transaction: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}
	defer tx.Rollback(ctx)

	var max *int64
	maxQuery := fmt.Sprintf(`SELECT MAX(receipt_no) FROM %s`, h.table)
	if err := tx.QueryRow(ctx, maxQuery).Scan(&max); err != nil {
		log.Printf("Failed to read %s counter: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}
	receiptNo := numbering.NextSimple(max, h.floor)

	insert := fmt.Sprintf(`
		INSERT INTO %s (receipt_no, date, customer_name, amount, payment_mode,
			hp_financier, model)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING receipt_no, date, customer_name, amount, payment_mode,
			hp_financier, model, created_at
	`, h.table)

	var created models.Receipt
	err = tx.QueryRow(ctx, insert, receiptNo, req.Date, req.CustomerName,
		float64(req.Amount), req.PaymentMode, req.HPFinancier, req.Model,
	).Scan(&created.ReceiptNo, &created.Date, &created.CustomerName, &created.Amount,
		&created.PaymentMode, &created.HPFinancier, &created.Model, &created.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			JSONError(w, http.StatusConflict, "Receipt number already exists. Please retry.")
			return
		}
		log.Printf("Failed to insert %s entry: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	// Sweep by the document's own date, not the insert time, so backdated
	// entries age out on schedule.
	sweep := fmt.Sprintf(`DELETE FROM %s WHERE date::date < NOW() - $1::interval`, h.table)
	if _, err := tx.Exec(ctx, sweep, h.window.Interval()); err != nil {
		log.Printf("Failed to sweep expired %s entries: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Failed to commit %s entry: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	JSON(w, http.StatusCreated, created)
}

// Update edits an existing receipt in place by its number. No sweep runs on
// edits.
func (h *ReceiptHandler) Update(w http.ResponseWriter, r *http.Request) {
	receiptNo, err := strconv.ParseInt(chi.URLParam(r, "receiptNo"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid receipt number")
		return
	}

	var req models.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	query := fmt.Sprintf(`
		UPDATE %s
		SET date = $2, customer_name = $3, amount = $4, payment_mode = $5,
		    hp_financier = $6, model = $7
		WHERE receipt_no = $1
		RETURNING receipt_no, date, customer_name, amount, payment_mode,
			hp_financier, model, created_at
	`, h.table)

	var updated models.Receipt
	err = pool.QueryRow(ctx, query, receiptNo, req.Date, req.CustomerName,
		float64(req.Amount), req.PaymentMode, req.HPFinancier, req.Model,
	).Scan(&updated.ReceiptNo, &updated.Date, &updated.CustomerName, &updated.Amount,
		&updated.PaymentMode, &updated.HPFinancier, &updated.Model, &updated.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			JSONError(w, http.StatusNotFound, "Receipt not found")
			return
		}
		log.Printf("Failed to update %s entry: %v", h.label, err)
		JSONError(w, http.StatusInternalServerError, "Failed to update receipt")
		return
	}

	JSON(w, http.StatusOK, updated)
}
