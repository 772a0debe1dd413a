package patient

import (
	"context"
	"strings"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type PatientService interface {
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type Service struct {
	repo          repository.PatientRepository
	clinicianRepo repository.ClinicianRepository
}

func NewService(repo repository.PatientRepository, clinicianRepo repository.ClinicianRepository) *Service {
	return &Service{
		repo:          repo,
		clinicianRepo: clinicianRepo,
	}
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// CreatePatient requires the owning clinician to exist. The FK constraint
// backs up the existence check, so a clinician deleted between check and
// insert still cannot leave a dangling reference.
func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if _, err := s.clinicianRepo.Get(ctx, req.ClinicianID); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		FirstName:   strings.ToUpper(req.FirstName),
		LastName:    strings.ToUpper(req.LastName),
		ClinicianID: req.ClinicianID,
	}

	return s.repo.Create(ctx, patient)
}

// DeletePatient removes the patient, or reports a conflict when appointments
// still reference it.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
