package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alicheaibx/ems-challenge/internal/apperror"
	"github.com/alicheaibx/ems-challenge/internal/models"

	"gorm.io/gorm"
)

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, input EmployeeInput) (uint, error) {
	if err := validateEmployeeInput(input); err != nil {
		return 0, err
	}

	employee := employeeFromInput(input)
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return 0, fmt.Errorf("create employee: %w", mapDatabaseError(err))
	}

	return employee.ID, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID uint, input EmployeeInput) error {
	if err := validateEmployeeInput(input); err != nil {
		return err
	}

	employee := employeeFromInput(input)
	result := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{
			"full_name":           employee.FullName,
			"phone_number":        employee.PhoneNumber,
			"salary":              employee.Salary,
			"email":               employee.Email,
			"date_of_birth":       employee.DateOfBirth,
			"job_title":           employee.JobTitle,
			"department":          employee.Department,
			"photo_file_path":     employee.PhotoFilePath,
			"document_file_paths": employee.DocumentFilePaths,
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("update employee: %w", mapDatabaseError(result.Error))
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "employee not found")
	}

	return nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", mapDatabaseError(err))
	}

	result := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employeeToDTO(employee))
	}
	return result, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID uint) (EmployeeDTO, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeDTO{}, apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return EmployeeDTO{}, fmt.Errorf("load employee: %w", mapDatabaseError(err))
	}

	return employeeToDTO(employee), nil
}

// DeleteEmployee removes the employee together with all of its timesheets in
// one transaction. Children go first so an enforced foreign key never blocks
// the parent delete.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Timesheet{}).Error; err != nil {
			return fmt.Errorf("delete employee timesheets: %w", mapDatabaseError(err))
		}

		result := tx.Delete(&models.Employee{}, employeeID)
		if result.Error != nil {
			return fmt.Errorf("delete employee: %w", mapDatabaseError(result.Error))
		}
		if result.RowsAffected == 0 {
			return apperror.New(apperror.CodeNotFound, "employee not found")
		}

		return nil
	})
}

func validateEmployeeInput(input EmployeeInput) error {
	var missing []string
	if isBlank(input.FullName) {
		missing = append(missing, "full_name")
	}
	if isBlank(input.PhoneNumber) {
		missing = append(missing, "phone_number")
	}
	if input.Salary == nil {
		missing = append(missing, "salary")
	}
	if err := missingFieldsError(missing); err != nil {
		return err
	}

	if math.IsInf(*input.Salary, 0) || math.IsNaN(*input.Salary) {
		return apperror.New(apperror.CodeValidation, "salary must be a finite number")
	}
	return nil
}

func employeeFromInput(input EmployeeInput) models.Employee {
	var salary float64
	if input.Salary != nil {
		salary = *input.Salary
	}

	return models.Employee{
		FullName:          trim(input.FullName),
		PhoneNumber:       trim(input.PhoneNumber),
		Salary:            salary,
		Email:             input.Email,
		DateOfBirth:       input.DateOfBirth,
		JobTitle:          input.JobTitle,
		Department:        input.Department,
		PhotoFilePath:     input.PhotoFilePath,
		DocumentFilePaths: input.DocumentFilePaths,
	}
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	var dateOfBirth *string
	if employee.DateOfBirth != nil {
		formatted := employee.DateOfBirth.Format(DateLayout)
		dateOfBirth = &formatted
	}

	return EmployeeDTO{
		ID:                employee.ID,
		FullName:          employee.FullName,
		Email:             employee.Email,
		PhoneNumber:       employee.PhoneNumber,
		DateOfBirth:       dateOfBirth,
		JobTitle:          employee.JobTitle,
		Department:        employee.Department,
		Salary:            employee.Salary,
		PhotoFilePath:     employee.PhotoFilePath,
		DocumentFilePaths: employee.DocumentFilePaths,
		CreatedAt:         employee.CreatedAt,
		UpdatedAt:         employee.UpdatedAt,
	}
}
