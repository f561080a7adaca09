package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet registro de horas sobre una tarea. Sin endpoint de actualización:
// fecha y horas son inmutables después de crearse.
type Timesheet struct {
	ID        string
	TaskID    string
	UserID    string
	Date      time.Time // solo fecha (DATE en DB)
	Hours     decimal.Decimal
	Billable  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
