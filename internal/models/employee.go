package models

import "time"

type Employee struct {
	ID                uint       `gorm:"primaryKey"`
	FullName          string     `gorm:"type:text;not null"`
	Email             *string    `gorm:"type:text"`
	PhoneNumber       string     `gorm:"type:text;not null"`
	DateOfBirth       *time.Time `gorm:"type:date"`
	JobTitle          *string    `gorm:"type:text"`
	Department        *string    `gorm:"type:text"`
	Salary            float64    `gorm:"not null;check:chk_employees_salary,salary >= 1500"`
	PhotoFilePath     *string    `gorm:"type:text"`
	DocumentFilePaths *string    `gorm:"type:text"`
	CreatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
