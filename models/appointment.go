package models

import "time"

// Appointment statuses. Only pending and confirmed occupy a slot; the
// terminal statuses free it.
const (
	AppointmentPending            = "pending"
	AppointmentConfirmed          = "confirmed"
	AppointmentCancelled          = "cancelled"
	AppointmentCompleted          = "completed"
	AppointmentPatientNoShow      = "patient_no_show"
	AppointmentProfessionalNoShow = "professional_no_show"
)

// ActiveAppointmentStatuses are the statuses that keep a slot occupied.
var ActiveAppointmentStatuses = []string{AppointmentPending, AppointmentConfirmed}

// Appointment is a booking record, owned by the booking flow and consumed
// read-only by the availability engine. Date is "2006-01-02" and Time is
// "HH:MM" at slot granularity.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	ProfessionalID string    `bson:"professional_id" json:"professional_id"`
	PatientID      string    `bson:"patient_id,omitempty" json:"patient_id,omitempty"`
	Date           string    `bson:"date" json:"date"`
	Time           string    `bson:"time" json:"time"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// Occupies reports whether this appointment still holds its slot.
func (a *Appointment) Occupies() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}
