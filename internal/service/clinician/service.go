package clinician

import (
	"context"
	"strings"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/npi"
	"github.com/jwalitptl/clinic-api/internal/repository"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type ClinicianService interface {
	ListClinicians(ctx context.Context) ([]*model.Clinician, error)
	CreateClinician(ctx context.Context, req *model.CreateClinicianRequest) (*model.Clinician, error)
	DeleteClinician(ctx context.Context, id int64) error
}

type Service struct {
	repo     repository.ClinicianRepository
	verifier npi.Verifier
}

func NewService(repo repository.ClinicianRepository, verifier npi.Verifier) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
	}
}

func (s *Service) ListClinicians(ctx context.Context) ([]*model.Clinician, error) {
	return s.repo.List(ctx)
}

// CreateClinician verifies the claimed identity against the NPI registry
// before anything is persisted. Names are normalized to uppercase on storage.
func (s *Service) CreateClinician(ctx context.Context, req *model.CreateClinicianRequest) (*model.Clinician, error) {
	verified, err := s.verifier.Verify(ctx, req.NPINumber, req.FirstName, req.LastName, req.State)
	if err != nil {
		return nil, apperrors.RegistryUnavailable(err)
	}
	if !verified {
		return nil, apperrors.InvalidIdentity("NPI details do not match registry record")
	}

	clinician := &model.Clinician{
		FirstName: strings.ToUpper(req.FirstName),
		LastName:  strings.ToUpper(req.LastName),
		State:     req.State,
		NPINumber: req.NPINumber,
	}

	return s.repo.Create(ctx, clinician)
}

// DeleteClinician removes the clinician, or reports a conflict when patients
// still reference it (restrict-with-error, no cascade).
func (s *Service) DeleteClinician(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
