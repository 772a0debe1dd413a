package model

// Appointment belongs to exactly one patient. Date and time are stored
// verbatim as submitted; no format is enforced.
type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
}

type CreateAppointmentRequest struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	PatientID int64  `json:"patient_id" binding:"required"`
}

type DeleteAppointmentRequest struct {
	AppointmentID int64 `json:"appointment_id" binding:"required"`
}
