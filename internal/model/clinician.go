package model

// Clinician is a provider identity record. Names are stored uppercase and
// the NPI number is unique across all clinicians.
type Clinician struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	State     string `db:"state" json:"state"`
	NPINumber string `db:"npi_number" json:"npi_number"`
}

type CreateClinicianRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	State     string `json:"state" binding:"required,us_state"`
	NPINumber string `json:"npi_number" binding:"required,numeric,len=10"`
}

type DeleteClinicianRequest struct {
	ClinicianID int64 `json:"clinician_id" binding:"required"`
}
