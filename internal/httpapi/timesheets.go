package httpapi

import (
	"net/http"

	"github.com/alicheaibx/ems-challenge/internal/service"
)

type timesheetRequest struct {
	EmployeeID flexibleUint `json:"employee_id"`
	StartTime  *string      `json:"start_time"`
	EndTime    *string      `json:"end_time"`
}

func (req timesheetRequest) toInput() (service.TimesheetInput, error) {
	startTime, err := parseDateTime("start_time", req.StartTime)
	if err != nil {
		return service.TimesheetInput{}, err
	}

	endTime, err := parseDateTime("end_time", req.EndTime)
	if err != nil {
		return service.TimesheetInput{}, err
	}

	return service.TimesheetInput{
		EmployeeID: req.EmployeeID.Value,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

func (h *Handler) handleCreateTimesheet(w http.ResponseWriter, r *http.Request) {
	var req timesheetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.timesheets.CreateTimesheet(r.Context(), input)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *Handler) handleListTimesheets(w http.ResponseWriter, r *http.Request) {
	timesheets, err := h.timesheets.ListTimesheets(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, timesheets)
}

func (h *Handler) handleGetTimesheet(w http.ResponseWriter, r *http.Request, timesheetID uint) {
	timesheet, err := h.timesheets.GetTimesheet(r.Context(), timesheetID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, timesheet)
}

func (h *Handler) handleUpdateTimesheet(w http.ResponseWriter, r *http.Request, timesheetID uint) {
	var req timesheetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.timesheets.UpdateTimesheet(r.Context(), timesheetID, input); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Timesheet entry updated successfully"})
}

func (h *Handler) handleDeleteTimesheet(w http.ResponseWriter, r *http.Request, timesheetID uint) {
	if err := h.timesheets.DeleteTimesheet(r.Context(), timesheetID); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Timesheet entry deleted successfully"})
}
