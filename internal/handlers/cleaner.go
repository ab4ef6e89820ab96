package handlers

import (
	"fmt"
	"net/http"

	"dealerdesk-backend/internal/cleaner"
	"dealerdesk-backend/internal/spreadsheet"
)

const maxCleanerUpload = 20 << 20

// CleanerHandler serves the two spreadsheet-reconciliation utilities. Both
// are pure transforms over uploaded workbooks; nothing is persisted.
type CleanerHandler struct{}

func NewCleanerHandler() *CleanerHandler {
	return &CleanerHandler{}
}

// Vahan fills customer names into a VAHAN portal export from an uploaded
// vehicle master. Expects two multipart files: "master" (chassis + name
// columns) and "vahan" (the portal export). Responds with the updated
// workbook as a download, plus fill counts in headers.
func (h *CleanerHandler) Vahan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCleanerUpload); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	masterRows, err := readUpload(r, "master")
	if err != nil {
		JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	vahanRows, err := readUpload(r, "vahan")
	if err != nil {
		JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	index := cleaner.BuildChassisIndex(masterRows)
	res := cleaner.FillVahanNames(vahanRows, index)

	out, err := spreadsheet.WriteMatrix("Sheet1", res.Rows)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	w.Header().Set("X-Total-Rows", fmt.Sprintf("%d", res.Total))
	w.Header().Set("X-Updated-Rows", fmt.Sprintf("%d", res.Updated))
	writeWorkbook(w, "vahan-updated.xlsx", out)
}

// DMS reduces a DMS day-book export to a clean Date/Name/Debit sheet and
// returns it as a download.
func (h *CleanerHandler) DMS(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCleanerUpload); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	rows, err := readUpload(r, "file")
	if err != nil {
		JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := cleaner.CleanDMSLedger(rows)
	if err != nil {
		JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := spreadsheet.WriteMatrix("Sheet1", res.Rows)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	w.Header().Set("X-Cleaned-Rows", fmt.Sprintf("%d", res.Cleaned))
	writeWorkbook(w, "dms-cleaned.xlsx", out)
}

// readUpload pulls one named multipart file and parses it into a row matrix.
func readUpload(r *http.Request, field string) ([][]string, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%q file is required", field)
	}
	defer file.Close()

	rows, err := spreadsheet.ReadMatrix(file, "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", field, err)
	}
	return rows, nil
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
