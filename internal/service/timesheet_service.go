package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alicheaibx/ems-challenge/internal/apperror"
	"github.com/alicheaibx/ems-challenge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimesheetService struct {
	db *gorm.DB
}

func NewTimesheetService(db *gorm.DB) *TimesheetService {
	return &TimesheetService{db: db}
}

type timesheetRow struct {
	ID         uint
	EmployeeID uint
	StartTime  time.Time
	EndTime    time.Time
	FullName   string
}

func (s *TimesheetService) CreateTimesheet(ctx context.Context, input TimesheetInput) (uint, error) {
	if err := validateTimesheetInput(input); err != nil {
		return 0, err
	}

	if err := s.ensureEmployeeExists(ctx, input.EmployeeID); err != nil {
		return 0, err
	}

	timesheet := models.Timesheet{
		EmployeeID: input.EmployeeID,
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&timesheet).Error; err != nil {
		return 0, fmt.Errorf("create timesheet: %w", mapDatabaseError(err))
	}

	return timesheet.ID, nil
}

func (s *TimesheetService) UpdateTimesheet(ctx context.Context, timesheetID uint, input TimesheetInput) error {
	if err := validateTimesheetInput(input); err != nil {
		return err
	}

	if err := s.ensureEmployeeExists(ctx, input.EmployeeID); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&models.Timesheet{}).
		Where("id = ?", timesheetID).
		Updates(map[string]interface{}{
			"employee_id": input.EmployeeID,
			"start_time":  input.StartTime.UTC(),
			"end_time":    input.EndTime.UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("update timesheet: %w", mapDatabaseError(result.Error))
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "timesheet not found")
	}

	return nil
}

func (s *TimesheetService) ListTimesheets(ctx context.Context) ([]TimesheetDTO, error) {
	var rows []timesheetRow
	if err := s.joined(ctx).Order("timesheets.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list timesheets: %w", mapDatabaseError(err))
	}
	return timesheetsToDTO(rows), nil
}

func (s *TimesheetService) ListEmployeeTimesheets(ctx context.Context, employeeID uint) ([]TimesheetDTO, error) {
	var rows []timesheetRow
	if err := s.joined(ctx).
		Where("timesheets.employee_id = ?", employeeID).
		Order("timesheets.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list employee timesheets: %w", mapDatabaseError(err))
	}
	return timesheetsToDTO(rows), nil
}

func (s *TimesheetService) GetTimesheet(ctx context.Context, timesheetID uint) (TimesheetDTO, error) {
	var rows []timesheetRow
	if err := s.joined(ctx).
		Where("timesheets.id = ?", timesheetID).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return TimesheetDTO{}, fmt.Errorf("load timesheet: %w", mapDatabaseError(err))
	}
	if len(rows) == 0 {
		return TimesheetDTO{}, apperror.New(apperror.CodeNotFound, "timesheet not found")
	}
	return timesheetToDTO(rows[0]), nil
}

func (s *TimesheetService) DeleteTimesheet(ctx context.Context, timesheetID uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Timesheet{}, timesheetID)
	if result.Error != nil {
		return fmt.Errorf("delete timesheet: %w", mapDatabaseError(result.Error))
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.CodeNotFound, "timesheet not found")
	}
	return nil
}

// joined selects timesheet columns with the owning employee's name. Rows whose
// employee no longer exists are dropped by the inner join.
func (s *TimesheetService) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("timesheets").
		Select("timesheets.id, timesheets.employee_id, timesheets.start_time, timesheets.end_time, employees.full_name").
		Joins("JOIN employees ON employees.id = timesheets.employee_id")
}

func (s *TimesheetService) ensureEmployeeExists(ctx context.Context, employeeID uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return fmt.Errorf("check employee existence: %w", mapDatabaseError(err))
	}
	if count == 0 {
		return apperror.New(apperror.CodeNotFound, "employee not found")
	}
	return nil
}

func validateTimesheetInput(input TimesheetInput) error {
	var missing []string
	if input.EmployeeID == 0 {
		missing = append(missing, "employee_id")
	}
	if input.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if input.EndTime == nil {
		missing = append(missing, "end_time")
	}
	return missingFieldsError(missing)
}

func timesheetsToDTO(rows []timesheetRow) []TimesheetDTO {
	result := make([]TimesheetDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, timesheetToDTO(row))
	}
	return result
}

func timesheetToDTO(row timesheetRow) TimesheetDTO {
	return TimesheetDTO{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		StartTime:  row.StartTime.UTC().Format(DateTimeLayout),
		EndTime:    row.EndTime.UTC().Format(DateTimeLayout),
		FullName:   row.FullName,
	}
}
