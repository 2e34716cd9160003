package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alicheaibx/ems-challenge/internal/apperror"
	"github.com/alicheaibx/ems-challenge/internal/service"
)

type Handler struct {
	employees  service.EmployeeManager
	timesheets service.TimesheetManager
	logger     zerolog.Logger
}

func NewHandler(employees service.EmployeeManager, timesheets service.TimesheetManager, logger zerolog.Logger) *Handler {
	return &Handler{
		employees:  employees,
		timesheets: timesheets,
		logger:     logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch parts[0] {
	case "employees":
		h.routeEmployees(w, r, parts)
	case "timesheets":
		h.routeTimesheets(w, r, parts)
	case "export.xlsx":
		if len(parts) != 1 {
			writeError(w, http.StatusNotFound, "route not found")
			return
		}
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleExport(w, r)
	default:
		writeError(w, http.StatusNotFound, "route not found")
	}
}

func (h *Handler) routeEmployees(w http.ResponseWriter, r *http.Request, parts []string) {
	switch {
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			h.handleListEmployees(w, r)
		case http.MethodPost:
			h.handleCreateEmployee(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 2:
		employeeID, err := parseUintID(parts[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid employee id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleGetEmployee(w, r, employeeID)
		case http.MethodPut:
			h.handleUpdateEmployee(w, r, employeeID)
		case http.MethodDelete:
			h.handleDeleteEmployee(w, r, employeeID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case len(parts) == 3 && parts[2] == "timesheets":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		employeeID, err := parseUintID(parts[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid employee id")
			return
		}

		h.handleListEmployeeTimesheets(w, r, employeeID)
		return
	}

	writeError(w, http.StatusNotFound, "route not found")
}

func (h *Handler) routeTimesheets(w http.ResponseWriter, r *http.Request, parts []string) {
	switch len(parts) {
	case 1:
		switch r.Method {
		case http.MethodGet:
			h.handleListTimesheets(w, r)
		case http.MethodPost:
			h.handleCreateTimesheet(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return

	case 2:
		timesheetID, err := parseUintID(parts[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timesheet id")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleGetTimesheet(w, r, timesheetID)
		case http.MethodPut:
			h.handleUpdateTimesheet(w, r, timesheetID)
		case http.MethodDelete:
			h.handleDeleteTimesheet(w, r, timesheetID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	writeError(w, http.StatusNotFound, "route not found")
}

func (h *Handler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		writeError(w, http.StatusBadRequest, err.Error())
	case apperror.CodeNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperror.CodeConstraint:
		var appErr *apperror.Error
		errors.As(err, &appErr)
		detail := appErr.Detail
		if detail == "" {
			detail = appErr.Message
		}
		h.logger.Warn().Str("request_id", RequestID(r.Context())).Err(err).Msg("constraint violation")
		writeStoreError(w, detail)
	default:
		h.logger.Error().Str("request_id", RequestID(r.Context())).Err(err).Msg("unexpected error")
		writeStoreError(w, err.Error())
	}
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body")
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("invalid JSON body")
	}
	return nil
}

// writeJSON encodes before writing the header so an unencodable payload
// becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(messageResponse{Message: "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message,omitempty"`
}

type storeErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeStoreError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, storeErrorResponse{
		Message: "database operation failed",
		Error:   message,
	})
}

func parseUintID(raw string) (uint, error) {
	id64, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}
