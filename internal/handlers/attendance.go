package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"dealerdesk-backend/internal/attendance"
	"dealerdesk-backend/internal/database"
	"dealerdesk-backend/internal/retention"
	"dealerdesk-backend/internal/spreadsheet"
	"dealerdesk-backend/internal/storage"
)

// maxAttendanceUpload caps biometric export uploads at 20MB.
const maxAttendanceUpload = 20 << 20

// AttendanceHandler ingests biometric attendance exports and serves the
// parsed dashboard views. The raw row matrix is stored per (month, year) so
// past months re-render without the original file; the workbook itself is
// archived to object storage as a best-effort backup.
type AttendanceHandler struct {
	db    database.Service
	store storage.Store
}

func NewAttendanceHandler(db database.Service, store storage.Store) *AttendanceHandler {
	return &AttendanceHandler{db: db, store: store}
}

type attendanceEmployee struct {
	attendance.Employee
	Stats attendance.Stats `json:"stats"`
}

// Upload accepts a multipart biometric export, detects or accepts the period,
// parses the sheet, and replaces any stored export for the same month. The
// delete-then-insert and the retention sweep run in one transaction.
func (h *AttendanceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttendanceUpload); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Attendance file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Failed to read attendance file")
		return
	}

	rows, err := spreadsheet.ReadMatrix(bytes.NewReader(data), "")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Failed to parse spreadsheet: "+err.Error())
		return
	}

	month := r.FormValue("month")
	year, _ := strconv.Atoi(r.FormValue("year"))
	if month == "" || year == 0 {
		period := attendance.DetectPeriod(rows, time.Now())
		month, year = period.Month, period.Year
	}

	employees, err := attendance.ParseSheet(rows, month, year)
	if err != nil {
		JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	blob, err := json.Marshal(rows)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	// Client filenames are reduced to their base name before they touch
	// storage paths.
	fileName := filepath.Base(header.Filename)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Printf("Failed to begin transaction: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}
	defer tx.Rollback(ctx)

	var oldFileName string
	if err := tx.QueryRow(ctx, `
		SELECT file_name FROM attendance_months WHERE month = $1 AND year = $2
	`, month, year).Scan(&oldFileName); err != nil && err != pgx.ErrNoRows {
		log.Printf("Failed to read replaced attendance month: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM attendance_months WHERE month = $1 AND year = $2
	`, month, year); err != nil {
		log.Printf("Failed to replace attendance month: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO attendance_months (month, year, file_name, data)
		VALUES ($1, $2, $3, $4)
	`, month, year, fileName, blob); err != nil {
		log.Printf("Failed to insert attendance month: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	cutoff := retention.AttendanceBlobs.Cutoff(time.Now())
	if _, err := tx.Exec(ctx, `DELETE FROM attendance_months WHERE created_at < $1`, cutoff); err != nil {
		log.Printf("Failed to sweep expired attendance months: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Failed to commit attendance month: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	// Archive the original workbook. Failures are logged, not surfaced; the
	// parsed matrix in the database is the source of truth.
	archivePath := archiveKey(month, year, fileName)
	contentType := header.Header.Get("Content-Type")
	if _, err := h.store.Save(ctx, archivePath, bytes.NewReader(data), contentType); err != nil {
		log.Printf("Failed to archive attendance workbook %s: %v", archivePath, err)
	}

	// A re-upload under a new filename leaves the previous archive behind;
	// drop it so the store holds one workbook per month.
	if oldFileName != "" && oldFileName != fileName {
		oldPath := archiveKey(month, year, oldFileName)
		if err := h.store.Delete(ctx, oldPath); err != nil {
			log.Printf("Failed to delete stale attendance archive %s: %v", oldPath, err)
		}
	}

	JSON(w, http.StatusCreated, map[string]interface{}{
		"month":     month,
		"year":      year,
		"fileName":  fileName,
		"rows":      rows,
		"employees": withStats(employees),
	})
}

// GetData returns the stored raw row matrix for a month.
func (h *AttendanceHandler) GetData(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var fileName string
	var blob json.RawMessage
	var createdAt time.Time
	err := pool.QueryRow(ctx, `
		SELECT file_name, data, created_at FROM attendance_months
		WHERE month = $1 AND year = $2
	`, month, year).Scan(&fileName, &blob, &createdAt)
	if err != nil {
		JSONError(w, http.StatusNotFound, "No attendance data for this month")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"month":     month,
		"year":      year,
		"fileName":  fileName,
		"rows":      blob,
		"createdAt": createdAt,
	})
}

// Months lists stored attendance periods, newest upload first.
func (h *AttendanceHandler) Months(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	rows, err := pool.Query(ctx, `
		SELECT month, year FROM attendance_months
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("Failed to list attendance months: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to fetch months")
		return
	}
	defer rows.Close()

	months := []map[string]interface{}{}
	for rows.Next() {
		var m string
		var y int
		if err := rows.Scan(&m, &y); err != nil {
			JSONError(w, http.StatusInternalServerError, "Failed to fetch months")
			return
		}
		months = append(months, map[string]interface{}{"month": m, "year": y})
	}

	JSON(w, http.StatusOK, map[string]interface{}{"months": months})
}

// Employees re-parses the stored matrix for a month and returns per-employee
// records with day classifications and summary stats.
func (h *AttendanceHandler) Employees(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pool := h.db.GetPool()

	var blob []byte
	err := pool.QueryRow(ctx, `
		SELECT data FROM attendance_months WHERE month = $1 AND year = $2
	`, month, year).Scan(&blob)
	if err != nil {
		JSONError(w, http.StatusNotFound, "No attendance data for this month")
		return
	}

	var matrix [][]string
	if err := json.Unmarshal(blob, &matrix); err != nil {
		log.Printf("Corrupt attendance blob for %s %d: %v", month, year, err)
		JSONError(w, http.StatusInternalServerError, "Failed to parse stored attendance")
		return
	}

	employees, err := attendance.ParseSheet(matrix, month, year)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"month":     month,
		"year":      year,
		"employees": withStats(employees),
	})
}

func withStats(employees []attendance.Employee) []attendanceEmployee {
	out := make([]attendanceEmployee, 0, len(employees))
	for i := range employees {
		out = append(out, attendanceEmployee{
			Employee: employees[i],
			Stats:    attendance.ComputeStats(&employees[i]),
		})
	}
	return out
}

// archiveKey builds the storage path for an uploaded workbook. The filename
// is reduced to its base name so it cannot carry path segments into the store.
func archiveKey(month string, year int, fileName string) string {
	return fmt.Sprintf("attendance/%s-%d-%s", month, year, filepath.Base(fileName))
}

func monthYearParams(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	month := r.URL.Query().Get("month")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if month == "" || year == 0 {
		JSONError(w, http.StatusBadRequest, "month and year query parameters are required")
		return "", 0, false
	}
	return month, year, true
}
