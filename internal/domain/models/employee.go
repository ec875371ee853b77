// internal/domain/models/employee.go
package models

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Employee is a person optionally linked to one café via an Assignment.
//
// EmployeeID is the business key: "UI" followed by seven uppercase
// alphanumerics, generated at creation and never changed.
type Employee struct {
	EmployeeID   string `bson:"employee_id" json:"employeeId"`
	Name         string `bson:"name" json:"name"`
	EmailAddress string `bson:"email_address" json:"email"`
	PhoneNumber  string `bson:"phone_number" json:"phone"`
	Gender       string `bson:"gender" json:"gender"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

var (
	ErrEmployeeNameRequired = errors.New("employee name is required")
	ErrBadEmailAddress      = errors.New("email address is invalid")
	ErrBadPhoneNumber       = errors.New("phone number must have at least 8 digits")
	ErrBadGender            = errors.New(`gender must be "Male"|"Female"|"Other"`)
)

// ValidateEmployeeFields checks the caller-supplied fields of an employee.
func ValidateEmployeeFields(name, email, phone, gender string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmployeeNameRequired
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrBadEmailAddress
	}
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 8 {
		return ErrBadPhoneNumber
	}
	switch gender {
	case "Male", "Female", "Other":
	default:
		return ErrBadGender
	}
	return nil
}
