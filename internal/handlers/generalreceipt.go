package handlers

import (
	"context"
	"encoding/json"
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

// GeneralReceiptHandler manages the financial-year-prefixed accounting
// receipt book. Numbers restart each FY under a new two-digit prefix, and the
// client sends the previewed number back with the save, so creates take the
// number from the request instead of allocating one server-side. The unique
// constraint on receipt_no catches stale previews.
type GeneralReceiptHandler struct {
	db database.Service
}

func NewGeneralReceiptHandler(db database.Service) *GeneralReceiptHandler {
	return &GeneralReceiptHandler{db: db}
}

// Next returns the next number within the current financial year's prefix.
// After the April 1 rollover the old FY's rows no longer match the prefix, so
// the counter restarts at NN00001 on its own.
func (h *GeneralReceiptHandler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	// Prefix match on the textual form so a series that outgrows NN99999
	// keeps counting instead of restarting.
	prefix := numbering.FYPrefix(time.Now())

	var max *int64
	err := pool.QueryRow(ctx, `
		SELECT MAX(receipt_no) FROM general_receipts
		WHERE CAST(receipt_no AS TEXT) LIKE $1
	`, prefix+"%").Scan(&max)
	if err != nil {
		log.Printf("Failed to read general receipt counter: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch next number")
		return
	}

	JSON(w, http.StatusOK, map[string]int64{
		"nextNumber": numbering.NextFY(max, prefix),
	})
}

// Months lists the distinct YYYY-MM months that still have general receipts,
// newest first.
func (h *GeneralReceiptHandler) Months(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT DISTINCT substring(date from 1 for 7) AS month
		FROM general_receipts
		ORDER BY month DESC
	`)
	if err != nil {
		log.Printf("Failed to list general receipt months: %v", err)
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

// List returns general receipts, newest number first. With ?month=YYYY-MM the
// whole month is returned; without it the list is capped at 500 rows.
func (h *GeneralReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	query := `
		SELECT receipt_no, date, customer_name, mobile, gst_no, file_no,
		       hp_financier, model, amount, payment_type, payment_mode,
		       payment_date, created_at
		FROM general_receipts
	`
	args := []interface{}{}
	if month := r.URL.Query().Get("month"); month != "" {
		query += ` WHERE substring(date from 1 for 7) = $1 ORDER BY receipt_no DESC`
		args = append(args, month)
	} else {
		query += ` ORDER BY receipt_no DESC LIMIT 500`
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Failed to list general receipts: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch receipts")
		return
	}
	defer rows.Close()

	receipts := []models.GeneralReceipt{}
	for rows.Next() {
		var rec models.GeneralReceipt
		if err := rows.Scan(&rec.ReceiptNo, &rec.Date, &rec.CustomerName, &rec.Mobile,
			&rec.GSTNo, &rec.FileNo, &rec.HPFinancier, &rec.Model, &rec.Amount,
			&rec.PaymentType, &rec.PaymentMode, &rec.PaymentDate, &rec.CreatedAt); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch receipts")
			return
		}
		receipts = append(receipts, rec)
	}

	JSON(w, http.StatusOK, map[string]interface{}{"receipts": receipts})
}

// Create saves a general receipt under the client-supplied number, sweeping
// entries past the retention window in the same transaction. A duplicate
// number means another save won the race since the preview was fetched.
func (h *GeneralReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.GeneralReceiptRequest
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

	// A preview fetched before the April rollover carries the prior FY's
	// prefix. Accepted, but leave a trace for the audit trail.
	if fy := numbering.FYPrefix(time.Now()); !numbering.HasFYPrefix(req.ReceiptNo, fy) {
		log.Printf("General receipt %d saved outside current FY prefix %s", req.ReceiptNo, fy)
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

	var created models.GeneralReceipt
	err = tx.QueryRow(ctx, `
		INSERT INTO general_receipts (receipt_no, date, customer_name, mobile,
			gst_no, file_no, hp_financier, model, amount, payment_type,
			payment_mode, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING receipt_no, date, customer_name, mobile, gst_no, file_no,
			hp_financier, model, amount, payment_type, payment_mode,
			payment_date, created_at
	`, req.ReceiptNo, req.Date, req.CustomerName, req.Mobile, req.GSTNo, req.FileNo,
		req.HPFinancier, req.Model, float64(req.Amount), req.PaymentType,
		req.PaymentMode, req.PaymentDate,
	).Scan(&created.ReceiptNo, &created.Date, &created.CustomerName, &created.Mobile,
		&created.GSTNo, &created.FileNo, &created.HPFinancier, &created.Model,
		&created.Amount, &created.PaymentType, &created.PaymentMode,
		&created.PaymentDate, &created.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			JSONError(w, http.StatusConflict, "Receipt number already exists. Please refresh.")
			return
		}
		log.Printf("Failed to insert general receipt: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	// Sweep by the document's own date, not the insert time, so backdated
	// entries age out on schedule.
	if _, err := tx.Exec(ctx, `DELETE FROM general_receipts WHERE date::date < NOW() - $1::interval`,
		retention.GeneralReceipts.Interval()); err != nil {
		log.Printf("Failed to sweep expired general receipts: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Failed to commit general receipt: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save receipt")
		return
	}

	JSON(w, http.StatusCreated, created)
}

// Update edits an existing general receipt in place by its number.
func (h *GeneralReceiptHandler) Update(w http.ResponseWriter, r *http.Request) {
	receiptNo, err := strconv.ParseInt(chi.URLParam(r, "receiptNo"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid receipt number")
		return
	}

	var req models.GeneralReceiptUpdate
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

	var updated models.GeneralReceipt
	err = pool.QueryRow(ctx, `
		UPDATE general_receipts
		SET date = $2, customer_name = $3, mobile = $4, gst_no = $5, file_no = $6,
		    hp_financier = $7, model = $8, amount = $9, payment_type = $10,
		    payment_mode = $11, payment_date = $12
		WHERE receipt_no = $1
		RETURNING receipt_no, date, customer_name, mobile, gst_no, file_no,
			hp_financier, model, amount, payment_type, payment_mode,
			payment_date, created_at
	`, receiptNo, req.Date, req.CustomerName, req.Mobile, req.GSTNo, req.FileNo,
		req.HPFinancier, req.Model, float64(req.Amount), req.PaymentType,
		req.PaymentMode, req.PaymentDate,
	).Scan(&updated.ReceiptNo, &updated.Date, &updated.CustomerName, &updated.Mobile,
		&updated.GSTNo, &updated.FileNo, &updated.HPFinancier, &updated.Model,
		&updated.Amount, &updated.PaymentType, &updated.PaymentMode,
		&updated.PaymentDate, &updated.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			JSONError(w, http.StatusNotFound, "Receipt not found")
			return
		}
		log.Printf("Failed to update general receipt: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to update receipt")
		return
	}

	JSON(w, http.StatusOK, updated)
}
