package httpapi

import (
	"net/http"

	"github.com/alicheaibx/ems-challenge/internal/service"
)

type employeeRequest struct {
	FullName          string        `json:"full_name"`
	PhoneNumber       string        `json:"phone_number"`
	Salary            flexibleFloat `json:"salary"`
	Email             *string       `json:"email"`
	DateOfBirth       *string       `json:"date_of_birth"`
	JobTitle          *string       `json:"job_title"`
	Department        *string       `json:"department"`
	PhotoFilePath     *string       `json:"photo_file_path"`
	DocumentFilePaths *string       `json:"document_file_paths"`
}

func (req employeeRequest) toInput() (service.EmployeeInput, error) {
	dateOfBirth, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return service.EmployeeInput{}, err
	}

	return service.EmployeeInput{
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		Salary:            req.Salary.Value,
		Email:             req.Email,
		DateOfBirth:       dateOfBirth,
		JobTitle:          req.JobTitle,
		Department:        req.Department,
		PhotoFilePath:     req.PhotoFilePath,
		DocumentFilePaths: req.DocumentFilePaths,
	}, nil
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.employees.CreateEmployee(r.Context(), input)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{ID: id, Message: "Employee added successfully"})
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request, employeeID uint) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.employees.UpdateEmployee(r.Context(), employeeID, input); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee updated successfully"})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request, employeeID uint) {
	employee, err := h.employees.GetEmployee(r.Context(), employeeID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request, employeeID uint) {
	if err := h.employees.DeleteEmployee(r.Context(), employeeID); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Employee and associated timesheets deleted successfully"})
}

func (h *Handler) handleListEmployeeTimesheets(w http.ResponseWriter, r *http.Request, employeeID uint) {
	timesheets, err := h.timesheets.ListEmployeeTimesheets(r.Context(), employeeID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, timesheets)
}
