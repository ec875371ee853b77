package models_test

import (
	"errors"
	"testing"

	"github.com/cafehubapp/cafehub/internal/domain/models"
)

func TestValidateCafeFields(t *testing.T) {
	tests := []struct {
		name        string
		cafeName    string
		description string
		location    string
		wantErr     error
	}{
		{"valid", "Bean There", "Coffee and toast", "SG", nil},
		{"missing name", "", "Coffee", "SG", models.ErrCafeNameRequired},
		{"whitespace name", "   ", "Coffee", "SG", models.ErrCafeNameRequired},
		{"missing description", "Bean There", "", "SG", models.ErrCafeDescriptionRequired},
		{"missing location", "Bean There", "Coffee", "", models.ErrCafeLocationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateCafeFields(tt.cafeName, tt.description, tt.location)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmployeeFields(t *testing.T) {
	tests := []struct {
		name    string
		empName string
		email   string
		phone   string
		gender  string
		wantErr error
	}{
		{"valid", "Alex Tan", "alex@example.com", "91234567", "Other", nil},
		{"valid with formatting", "Alex Tan", "alex@example.com", "+65 9123-4567", "Female", nil},
		{"missing name", "", "alex@example.com", "91234567", "Male", models.ErrEmployeeNameRequired},
		{"no at sign", "Alex Tan", "alex.example.com", "91234567", "Male", models.ErrBadEmailAddress},
		{"at sign first", "Alex Tan", "@example.com", "91234567", "Male", models.ErrBadEmailAddress},
		{"at sign last", "Alex Tan", "alex@", "91234567", "Male", models.ErrBadEmailAddress},
		{"short phone", "Alex Tan", "alex@example.com", "1234567", "Male", models.ErrBadPhoneNumber},
		{"bad gender", "Alex Tan", "alex@example.com", "91234567", "male", models.ErrBadGender},
		{"empty gender", "Alex Tan", "alex@example.com", "91234567", "", models.ErrBadGender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateEmployeeFields(tt.empName, tt.email, tt.phone, tt.gender)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
