// internal/domain/models/assignment.go
package models

import "time"

// Assignment records "employee X currently works at café Y since StartDate".
//
// An employee has at most one assignment at a time (unique index on
// employee_id). Rows are written only by the coordinator as a side effect
// of employee or café mutations; a row never outlives its employee and
// never references a café that does not exist. StartDate is preserved when
// an update re-states the same café and reset to the update time when the
// café actually changes.
type Assignment struct {
	EmployeeID string    `bson:"employee_id" json:"employeeId"`
	CafeID     string    `bson:"cafe_id" json:"cafeId"`
	StartDate  time.Time `bson:"start_date" json:"startDate"`
}
