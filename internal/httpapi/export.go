package httpapi

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/alicheaibx/ems-challenge/internal/export"
)

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	timesheets, err := h.timesheets.ListTimesheets(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, employees, timesheets); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="ems.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
