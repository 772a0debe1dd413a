package model

// Patient belongs to exactly one clinician. Names are stored uppercase.
type Patient struct {
	ID          int64  `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	ClinicianID int64  `db:"clinician_id" json:"clinician_id"`
}

type CreatePatientRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	ClinicianID int64  `json:"clinician_id" binding:"required"`
}

type DeletePatientRequest struct {
	PatientID int64 `json:"patient_id" binding:"required"`
}
