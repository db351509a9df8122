package dto

// BookAppointmentRequest entrada para agendar una cita. ScheduledTime viaja
// como string y se valida como ISO-8601 en el use case.
type BookAppointmentRequest struct {
	CarID         string `json:"carId"`
	OfferingID    string `json:"offeringId"`
	ScheduledTime string `json:"scheduledTime"`
}
