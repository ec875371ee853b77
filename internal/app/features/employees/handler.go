// Package employees serves the employee JSON API: roster listing with
// café details and tenure, and create/update/delete through the
// coordinator.
package employees

import (
	"github.com/cafehubapp/cafehub/internal/app/coordinator"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB    *mongo.Database
	Coord *coordinator.Coordinator
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, coord *coordinator.Coordinator, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Coord: coord, Log: logger}
}

// employeeBody is the JSON request body for create and update.
type employeeBody struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
	CafeID string `json:"cafeId"`
}

func (b employeeBody) toInput() coordinator.EmployeeInput {
	return coordinator.EmployeeInput{
		Name:         b.Name,
		EmailAddress: b.Email,
		PhoneNumber:  b.Phone,
		Gender:       b.Gender,
		CafeID:       b.CafeID,
	}
}
