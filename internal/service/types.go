package service

import (
	"context"
	"time"
)

type EmployeeInput struct {
	FullName          string
	PhoneNumber       string
	Salary            *float64
	Email             *string
	DateOfBirth       *time.Time
	JobTitle          *string
	Department        *string
	PhotoFilePath     *string
	DocumentFilePaths *string
}

type TimesheetInput struct {
	EmployeeID uint
	StartTime  *time.Time
	EndTime    *time.Time
}

type EmployeeDTO struct {
	ID                uint      `json:"id"`
	FullName          string    `json:"full_name"`
	Email             *string   `json:"email"`
	PhoneNumber       string    `json:"phone_number"`
	DateOfBirth       *string   `json:"date_of_birth"`
	JobTitle          *string   `json:"job_title"`
	Department        *string   `json:"department"`
	Salary            float64   `json:"salary"`
	PhotoFilePath     *string   `json:"photo_file_path"`
	DocumentFilePaths *string   `json:"document_file_paths"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type TimesheetDTO struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	FullName   string `json:"full_name"`
}

type EmployeeManager interface {
	CreateEmployee(ctx context.Context, input EmployeeInput) (uint, error)
	UpdateEmployee(ctx context.Context, employeeID uint, input EmployeeInput) error
	ListEmployees(ctx context.Context) ([]EmployeeDTO, error)
	GetEmployee(ctx context.Context, employeeID uint) (EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, employeeID uint) error
}

type TimesheetManager interface {
	CreateTimesheet(ctx context.Context, input TimesheetInput) (uint, error)
	UpdateTimesheet(ctx context.Context, timesheetID uint, input TimesheetInput) error
	ListTimesheets(ctx context.Context) ([]TimesheetDTO, error)
	ListEmployeeTimesheets(ctx context.Context, employeeID uint) ([]TimesheetDTO, error)
	GetTimesheet(ctx context.Context, timesheetID uint) (TimesheetDTO, error)
	DeleteTimesheet(ctx context.Context, timesheetID uint) error
}
