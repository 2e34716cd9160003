// Package export renders employee and timesheet records as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alicheaibx/ems-challenge/internal/service"
)

const (
	EmployeesSheet  = "Employees"
	TimesheetsSheet = "Timesheets"
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	employeeHeader = []interface{}{
		"id", "full_name", "email", "phone_number", "date_of_birth", "job_title",
		"department", "salary", "created_at", "updated_at",
	}
	timesheetHeader = []interface{}{"id", "employee_id", "full_name", "start_time", "end_time"}
)

// WriteWorkbook writes one sheet per table to w, header row first.
func WriteWorkbook(w io.Writer, employees []service.EmployeeDTO, timesheets []service.TimesheetDTO) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), EmployeesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := file.NewSheet(TimesheetsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	employeeRows := make([][]interface{}, 0, len(employees)+1)
	employeeRows = append(employeeRows, employeeHeader)
	for _, e := range employees {
		employeeRows = append(employeeRows, []interface{}{
			e.ID, e.FullName, deref(e.Email), e.PhoneNumber, deref(e.DateOfBirth), deref(e.JobTitle),
			deref(e.Department), e.Salary,
			e.CreatedAt.UTC().Format(service.DateTimeLayout), e.UpdatedAt.UTC().Format(service.DateTimeLayout),
		})
	}
	if err := writeRows(file, EmployeesSheet, employeeRows); err != nil {
		return err
	}

	timesheetRows := make([][]interface{}, 0, len(timesheets)+1)
	timesheetRows = append(timesheetRows, timesheetHeader)
	for _, t := range timesheets {
		timesheetRows = append(timesheetRows, []interface{}{t.ID, t.EmployeeID, t.FullName, t.StartTime, t.EndTime})
	}
	if err := writeRows(file, TimesheetsSheet, timesheetRows); err != nil {
		return err
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(file *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
