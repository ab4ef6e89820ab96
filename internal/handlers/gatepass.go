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

// GatePassHandler manages the vehicle delivery gate pass book.
type GatePassHandler struct {
	db database.Service
}

func NewGatePassHandler(db database.Service) *GatePassHandler {
	return &GatePassHandler{db: db}
}

// Next returns the pass number the next save will receive. Advisory only;
// the authoritative allocation happens inside the create transaction.
func (h *GatePassHandler) Next(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var max *int64
	if err := pool.QueryRow(ctx, `SELECT MAX(pass_no) FROM gate_passes`).Scan(&max); err != nil {
		log.Printf("Failed to read gate pass counter: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch next number")
		return
	}

	JSON(w, http.StatusOK, map[string]int64{
		"nextNumber": numbering.NextSimple(max, numbering.GatePassFloor),
	})
}

// Months lists the distinct YYYY-MM months that still have gate passes,
// newest first, so the dashboard can offer a month filter.
func (h *GatePassHandler) Months(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT DISTINCT substring(date from 1 for 7) AS month
		FROM gate_passes
		ORDER BY month DESC
	`)
	if err != nil {
		log.Printf("Failed to list gate pass months: %v", err)
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

// List returns gate passes, newest number first. With ?month=YYYY-MM the
// whole month is returned; without it the list is capped at 500 rows.
func (h *GatePassHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	query := `
		SELECT pass_no, date, customer_name, model, color, regn_no, chassis_no,
		       sales_bill_no, spares_bill_no, service_bill_no, narration, created_at
		FROM gate_passes
	`
	args := []interface{}{}
	if month := r.URL.Query().Get("month"); month != "" {
		query += ` WHERE substring(date from 1 for 7) = $1 ORDER BY pass_no DESC`
		args = append(args, month)
	} else {
		query += ` ORDER BY pass_no DESC LIMIT 500`
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Failed to list gate passes: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch gate passes")
		return
	}
	defer rows.Close()

	passes := []models.GatePass{}
	for rows.Next() {
		var p models.GatePass
		if err := rows.Scan(&p.PassNo, &p.Date, &p.CustomerName, &p.Model, &p.Color,
			&p.RegnNo, &p.ChassisNo, &p.SalesBillNo, &p.SparesBillNo,
			&p.ServiceBillNo, &p.Narration, &p.CreatedAt); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch gate passes")
			return
		}
		passes = append(passes, p)
	}

	JSON(w, http.StatusOK, map[string]interface{}{"gatePasses": passes})
}

// Create allocates the next pass number and saves the gate pass in a single
// transaction. Entries older than the retention window are swept in the same
// transaction, so the book trims itself on every write.
func (h *GatePassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.GatePassRequest
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
		JSONError(w, http.StatusInternalServerError, "Failed to save gate pass")
		return
	}
	defer tx.Rollback(ctx)

	var max *int64
	if err := tx.QueryRow(ctx, `SELECT MAX(pass_no) FROM gate_passes`).Scan(&max); err != nil {
		log.Printf("Failed to read gate pass counter: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save gate pass")
		return
	}
	passNo := numbering.NextSimple(max, numbering.GatePassFloor)

	var created models.GatePass
	err = tx.QueryRow(ctx, `
		INSERT INTO gate_passes (pass_no, date, customer_name, model, color, regn_no,
			chassis_no, sales_bill_no, spares_bill_no, service_bill_no, narration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING pass_no, date, customer_name, model, color, regn_no, chassis_no,
			sales_bill_no, spares_bill_no, service_bill_no, narration, created_at
	`, passNo, req.Date, req.CustomerName, req.Model, req.Color, req.RegnNo,
		req.ChassisNo, req.SalesBillNo, req.SparesBillNo, req.ServiceBillNo, req.Narration,
	).Scan(&created.PassNo, &created.Date, &created.CustomerName, &created.Model,
		&created.Color, &created.RegnNo, &created.ChassisNo, &created.SalesBillNo,
		&created.SparesBillNo, &created.ServiceBillNo, &created.Narration, &created.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			JSONError(w, http.StatusConflict, "Gate pass number already exists. Please retry.")
			return
		}
		log.Printf("Failed to insert gate pass: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save gate pass")
		return
	}

	// Sweep by the document's own date, not the insert time, so backdated
	// entries age out on schedule.
	if _, err := tx.Exec(ctx, `DELETE FROM gate_passes WHERE date::date < NOW() - $1::interval`,
		retention.GatePasses.Interval()); err != nil {
		log.Printf("Failed to sweep expired gate passes: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save gate pass")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Failed to commit gate pass: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save gate pass")
		return
	}

	JSON(w, http.StatusCreated, created)
}

// Update edits an existing gate pass in place by its pass number. The number
// itself is immutable and no retention sweep runs on edits.
func (h *GatePassHandler) Update(w http.ResponseWriter, r *http.Request) {
	passNo, err := strconv.ParseInt(chi.URLParam(r, "passNo"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid pass number")
		return
	}

	var req models.GatePassRequest
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

	var updated models.GatePass
	err = pool.QueryRow(ctx, `
		UPDATE gate_passes
		SET date = $2, customer_name = $3, model = $4, color = $5, regn_no = $6,
		    chassis_no = $7, sales_bill_no = $8, spares_bill_no = $9,
		    service_bill_no = $10, narration = $11
		WHERE pass_no = $1
		RETURNING pass_no, date, customer_name, model, color, regn_no, chassis_no,
			sales_bill_no, spares_bill_no, service_bill_no, narration, created_at
	`, passNo, req.Date, req.CustomerName, req.Model, req.Color, req.RegnNo,
		req.ChassisNo, req.SalesBillNo, req.SparesBillNo, req.ServiceBillNo, req.Narration,
	).Scan(&updated.PassNo, &updated.Date, &updated.CustomerName, &updated.Model,
		&updated.Color, &updated.RegnNo, &updated.ChassisNo, &updated.SalesBillNo,
		&updated.SparesBillNo, &updated.ServiceBillNo, &updated.Narration, &updated.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			JSONError(w, http.StatusNotFound, "Gate pass not found")
			return
		}
		log.Printf("Failed to update gate pass: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to update gate pass")
		return
	}

	JSON(w, http.StatusOK, updated)
}
