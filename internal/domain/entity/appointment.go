package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Appointment.
const (
	AppointmentScheduled = "SCHEDULED"
	AppointmentCompleted = "COMPLETED"
	AppointmentCancelled = "CANCELLED"
)

// Appointment representa una cita agendada. Customer, Car y Offering van
// embebidos por valor, como en el resto de los fixtures.
type Appointment struct {
	ID            string          `json:"id"`
	ScheduledTime time.Time       `json:"scheduledTime"`
	Status        string          `json:"status"` // SCHEDULED, COMPLETED, CANCELLED
	TotalCost     decimal.Decimal `json:"totalCost"`
	Customer      Customer        `json:"customer"`
	Car           Car             `json:"car"`
	Offering      Offering        `json:"offering"`
}
