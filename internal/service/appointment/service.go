package appointment

import (
	"context"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type AppointmentService interface {
	ListAppointments(ctx context.Context) ([]*model.Appointment, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
	}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}

// CreateAppointment requires the owning patient to exist. Date and time are
// stored verbatim.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.patientRepo.Get(ctx, req.PatientID); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		Date:      req.Date,
		Time:      req.Time,
		PatientID: req.PatientID,
	}

	return s.repo.Create(ctx, appointment)
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
