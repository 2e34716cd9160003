package models

import "time"

type Timesheet struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null"`
	Employee   Employee  `gorm:"foreignKey:EmployeeID;references:ID"`
	StartTime  time.Time `gorm:"type:timestamp;not null"`
	EndTime    time.Time `gorm:"type:timestamp;not null"`
}
