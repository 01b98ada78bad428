package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeEmployeeCreated = "employee.created"
	EventTypeEmployeeUpdated = "employee.updated"
	EventTypeEmployeeDeleted = "employee.deleted"
)

// EmployeeEventTypes lists every employee change event.
var EmployeeEventTypes = []string{
	EventTypeEmployeeCreated,
	EventTypeEmployeeUpdated,
	EventTypeEmployeeDeleted,
}

// EmployeeChangedEvent records a write to one employee row. DepartmentID is
// the department after the change, nil when unassigned or deleted.
type EmployeeChangedEvent struct {
	BaseEvent
	EmployeeID   int64  `json:"employee_id"`
	Email        string `json:"email,omitempty"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

func NewEmployeeChangedEvent(eventType string, employeeID int64, email string, departmentID *int64) *EmployeeChangedEvent {
	data := map[string]interface{}{
		"employee_id": employeeID,
	}
	if email != "" {
		data["email"] = email
	}
	if departmentID != nil {
		data["department_id"] = *departmentID
	}

	return &EmployeeChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data:      data,
		},
		EmployeeID:   employeeID,
		Email:        email,
		DepartmentID: departmentID,
	}
}
