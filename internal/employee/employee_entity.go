package employee

import (
	"fmt"

	"github.com/google/uuid"
)

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "ACTIVE"
	StatusInactive   EmployeeStatus = "INACTIVE"
	StatusTerminated EmployeeStatus = "TERMINATED"
)

// Statuses lists the values of the employee_status database enum, in display order.
var Statuses = []EmployeeStatus{StatusActive, StatusInactive, StatusTerminated}

// ParseEmployeeStatus accepts only the exact enum spelling.
func ParseEmployeeStatus(v string) (EmployeeStatus, error) {
	for _, s := range Statuses {
		if string(s) == v {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown employee status %q", v)
}

// Employee is the read-only directory projection of the employees table.
// Relations are resolved with LEFT JOINs under their field names.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string
	Selected  bool
	Status    EmployeeStatus `gorm:"type:employee_status"`
	Image     *string

	JobID         *uuid.UUID           `gorm:"type:uuid"`
	Job           *EmployeeJob         `gorm:"foreignKey:JobID;references:ID"`
	DepartmentID  *uuid.UUID           `gorm:"type:uuid"`
	Department    *EmployeeDepartment  `gorm:"foreignKey:DepartmentID;references:ID"`
	OfficeID      *uuid.UUID           `gorm:"type:uuid"`
	Office        *EmployeeOffice      `gorm:"foreignKey:OfficeID;references:ID"`
	LineManagerID *uuid.UUID           `gorm:"type:uuid"`
	LineManager   *EmployeeLineManager `gorm:"foreignKey:LineManagerID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeJob struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"column:title"`
}

func (EmployeeJob) TableName() string {
	return "jobs"
}

type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

type EmployeeOffice struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeOffice) TableName() string {
	return "offices"
}

// EmployeeLineManager is a second view of employees, joined as "LineManager".
type EmployeeLineManager struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (EmployeeLineManager) TableName() string {
	return "employees"
}
