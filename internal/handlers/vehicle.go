package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"dealerdesk-backend/internal/cleaner"
	"dealerdesk-backend/internal/database"
	"dealerdesk-backend/internal/models"
	"dealerdesk-backend/internal/spreadsheet"
)

const (
	maxVehicleUpload   = 20 << 20
	vehicleInsertChunk = 500
	vehicleSearchLimit = 10
)

// VehicleHandler manages the vehicle master used for chassis lookups. The
// register is replaced wholesale on upload; search matches cleaned chassis or
// customer name.
type VehicleHandler struct {
	db database.Service
}

func NewVehicleHandler(db database.Service) *VehicleHandler {
	return &VehicleHandler{db: db}
}

// Upload replaces the vehicle master with the rows of an uploaded workbook.
// Expected columns: chassis number, customer name, model, color. Row 0 is
// treated as a header and skipped. Truncate and inserts run in one
// transaction so a failed upload leaves the old register intact.
func (h *VehicleHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxVehicleUpload); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Vehicle file is required")
		return
	}
	defer file.Close()

	rows, err := spreadsheet.ReadMatrix(file, "")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Failed to parse spreadsheet: "+err.Error())
		return
	}

	vehicles := []models.Vehicle{}
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		v := models.Vehicle{ChassisNo: cleaner.CleanChassis(cellOr(row, 0))}
		if v.ChassisNo == "" {
			continue
		}
		v.CustomerName = strings.TrimSpace(cellOr(row, 1))
		v.Model = strings.TrimSpace(cellOr(row, 2))
		v.Color = strings.TrimSpace(cellOr(row, 3))
		vehicles = append(vehicles, v)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Printf("Failed to begin transaction: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save vehicles")
		return
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE vehicles RESTART IDENTITY`); err != nil {
		log.Printf("Failed to truncate vehicles: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save vehicles")
		return
	}

	for start := 0; start < len(vehicles); start += vehicleInsertChunk {
		end := start + vehicleInsertChunk
		if end > len(vehicles) {
			end = len(vehicles)
		}

		batch := &pgx.Batch{}
		for _, v := range vehicles[start:end] {
			batch.Queue(`
				INSERT INTO vehicles (chassis_no, customer_name, model, color)
				VALUES ($1, $2, $3, $4)
			`, v.ChassisNo, v.CustomerName, v.Model, v.Color)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			log.Printf("Failed to insert vehicle batch: %v", err)
			JSONError(w, http.StatusInternalServerError, "Failed to save vehicles")
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Failed to commit vehicle upload: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save vehicles")
		return
	}

	JSON(w, http.StatusCreated, map[string]int{"imported": len(vehicles)})
}

// Search matches vehicles by chassis substring or customer name substring.
// The query is chassis-cleaned before matching so pasted chassis numbers with
// stray spaces still hit.
func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		JSON(w, http.StatusOK, map[string]interface{}{"vehicles": []models.Vehicle{}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	chassisQ := "%" + cleaner.CleanChassis(q) + "%"
	nameQ := "%" + q + "%"

	rows, err := pool.Query(ctx, `
		SELECT id, chassis_no, customer_name, model, color
		FROM vehicles
		WHERE chassis_no ILIKE $1 OR customer_name ILIKE $2
		LIMIT $3
	`, chassisQ, nameQ, vehicleSearchLimit)
	if err != nil {
		log.Printf("Failed to search vehicles: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to search vehicles")
		return
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.ChassisNo, &v.CustomerName, &v.Model, &v.Color); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to search vehicles")
			return
		}
		vehicles = append(vehicles, v)
	}

	JSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

func cellOr(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
