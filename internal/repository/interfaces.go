package repository

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	ClinicianRepository interface {
		Create(ctx context.Context, clinician *model.Clinician) (*model.Clinician, error)
		Get(ctx context.Context, id int64) (*model.Clinician, error)
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Clinician, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Get(ctx context.Context, id int64) (*model.Patient, error)
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		Delete(ctx context.Context, id int64) error
		List(ctx context.Context) ([]*model.Appointment, error)
	}
)
