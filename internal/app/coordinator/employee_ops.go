package coordinator

import (
	"context"
	"errors"

	employeestore "github.com/cafehubapp/cafehub/internal/app/store/employees"
	"github.com/cafehubapp/cafehub/internal/app/system/apperr"
	"github.com/cafehubapp/cafehub/internal/app/system/htmlsanitize"
	"github.com/cafehubapp/cafehub/internal/app/system/txn"
	"github.com/cafehubapp/cafehub/internal/domain/models"
)

// EmployeeInput carries the caller-supplied employee fields. CafeID is the
// café the employee works at; empty means unassigned.
type EmployeeInput struct {
	Name         string
	EmailAddress string
	PhoneNumber  string
	Gender       string
	CafeID       string
}

func (in *EmployeeInput) sanitize() {
	in.Name = htmlsanitize.Strip(in.Name)
}

// CreateEmployee generates an employee id and inserts the employee record.
// If a café is given, the café must exist and an assignment starting now
// is inserted in the same transaction, so the employee and their
// assignment become visible together or not at all. A generated-id
// collision is retried with a fresh id before surfacing as a conflict.
func (c *Coordinator) CreateEmployee(ctx context.Context, in EmployeeInput) (models.Employee, error) {
	in.sanitize()
	if err := models.ValidateEmployeeFields(in.Name, in.EmailAddress, in.PhoneNumber, in.Gender); err != nil {
		return models.Employee{}, apperr.Validation(err)
	}

	var created models.Employee
	err := txn.Run(ctx, c.db, c.log, func(ctx context.Context) error {
		if in.CafeID != "" {
			if _, err := c.cafes.GetByCafeID(ctx, in.CafeID); err != nil {
				if isNoDocuments(err) {
					return apperr.NotFoundf("cafe %s not found", in.CafeID)
				}
				return err
			}
		}

		emp := models.Employee{
			Name:         in.Name,
			EmailAddress: in.EmailAddress,
			PhoneNumber:  in.PhoneNumber,
			Gender:       in.Gender,
		}
		var insertErr error
		for attempt := 0; attempt < idRetries; attempt++ {
			emp.EmployeeID = c.NewEmployeeID()
			created, insertErr = c.employees.Insert(ctx, emp)
			if insertErr == nil {
				break
			}
			if !errors.Is(insertErr, employeestore.ErrDuplicateEmployeeID) {
				return insertErr
			}
		}
		if insertErr != nil {
			return apperr.Conflict(insertErr)
		}

		if in.CafeID != "" {
			return c.assignments.Insert(ctx, models.Assignment{
				EmployeeID: created.EmployeeID,
				CafeID:     in.CafeID,
				StartDate:  c.Now().UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return models.Employee{}, storage(err)
	}
	return created, nil
}

// UpdateEmployee updates an employee's fields and reconciles their
// assignment in one transaction. StartDate is reset to now only when the
// assigned café actually changes; re-stating the current café keeps the
// original StartDate, so a no-op edit never resets tenure. An empty
// CafeID unassigns the employee by deleting the assignment row.
func (c *Coordinator) UpdateEmployee(ctx context.Context, employeeID string, in EmployeeInput) (*models.Employee, error) {
	in.sanitize()
	if err := models.ValidateEmployeeFields(in.Name, in.EmailAddress, in.PhoneNumber, in.Gender); err != nil {
		return nil, apperr.Validation(err)
	}

	var updated *models.Employee
	err := txn.Run(ctx, c.db, c.log, func(ctx context.Context) error {
		emp, err := c.employees.GetByEmployeeID(ctx, employeeID)
		if err != nil {
			if isNoDocuments(err) {
				return apperr.NotFoundf("employee %s not found", employeeID)
			}
			return err
		}

		current, err := c.assignments.GetByEmployee(ctx, employeeID)
		if err != nil && !isNoDocuments(err) {
			return err
		}

		cafeChanged := false
		if current != nil {
			cafeChanged = in.CafeID != current.CafeID
		} else if in.CafeID != "" {
			cafeChanged = true
		}

		startDate := c.Now().UTC()
		if !cafeChanged && current != nil {
			startDate = current.StartDate
		}

		if _, err := c.employees.Update(ctx, employeeID, employeestore.Update{
			Name:         in.Name,
			EmailAddress: in.EmailAddress,
			PhoneNumber:  in.PhoneNumber,
			Gender:       in.Gender,
		}); err != nil {
			return err
		}

		if in.CafeID == "" {
			if current != nil {
				if _, err := c.assignments.DeleteByEmployee(ctx, employeeID); err != nil {
					return err
				}
			}
		} else {
			if cafeChanged {
				if _, err := c.cafes.GetByCafeID(ctx, in.CafeID); err != nil {
					if isNoDocuments(err) {
						return apperr.NotFoundf("cafe %s not found", in.CafeID)
					}
					return err
				}
			}
			if err := c.assignments.Upsert(ctx, models.Assignment{
				EmployeeID: employeeID,
				CafeID:     in.CafeID,
				StartDate:  startDate,
			}); err != nil {
				return err
			}
		}

		emp.Name = in.Name
		emp.EmailAddress = in.EmailAddress
		emp.PhoneNumber = in.PhoneNumber
		emp.Gender = in.Gender
		updated = emp
		return nil
	})
	if err != nil {
		return nil, storage(err)
	}
	return updated, nil
}

// DeleteEmployee removes the employee, then their assignment if present.
// The two deletes are not one transaction: a failure between them leaves
// an assignment row pointing at a deleted employee, which roster reads
// ignore and which a later reassignment or café delete cleans up.
func (c *Coordinator) DeleteEmployee(ctx context.Context, employeeID string) error {
	deleted, err := c.employees.Delete(ctx, employeeID)
	if err != nil {
		return storage(err)
	}
	if deleted == 0 {
		return apperr.NotFoundf("employee %s not found", employeeID)
	}

	if _, err := c.assignments.DeleteByEmployee(ctx, employeeID); err != nil {
		return storage(err)
	}
	return nil
}
