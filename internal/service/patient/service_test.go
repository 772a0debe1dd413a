package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type fakeClinicianRepo struct {
	clinicians map[int64]*model.Clinician
}

func (r *fakeClinicianRepo) Create(ctx context.Context, clinician *model.Clinician) (*model.Clinician, error) {
	r.clinicians[clinician.ID] = clinician
	return clinician, nil
}

func (r *fakeClinicianRepo) Get(ctx context.Context, id int64) (*model.Clinician, error) {
	clinician, ok := r.clinicians[id]
	if !ok {
		return nil, apperrors.NotFound("clinician")
	}
	return clinician, nil
}

func (r *fakeClinicianRepo) Delete(ctx context.Context, id int64) error {
	delete(r.clinicians, id)
	return nil
}

func (r *fakeClinicianRepo) List(ctx context.Context) ([]*model.Clinician, error) {
	result := []*model.Clinician{}
	for _, clinician := range r.clinicians {
		result = append(result, clinician)
	}
	return result, nil
}

type fakePatientRepo struct {
	nextID     int64
	patients   map[int64]*model.Patient
	referenced map[int64]bool
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	r.nextID++
	patient.ID = r.nextID
	r.patients[patient.ID] = patient
	return patient, nil
}

func (r *fakePatientRepo) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient")
	}
	return patient, nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.patients[id]; !ok {
		return apperrors.NotFound("patient")
	}
	if r.referenced[id] {
		return apperrors.Conflict("referential constraint violated", nil)
	}
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	result := []*model.Patient{}
	for _, patient := range r.patients {
		result = append(result, patient)
	}
	return result, nil
}

func newTestService() (*Service, *fakePatientRepo, *fakeClinicianRepo) {
	patientRepo := &fakePatientRepo{
		patients:   make(map[int64]*model.Patient),
		referenced: make(map[int64]bool),
	}
	clinicianRepo := &fakeClinicianRepo{
		clinicians: map[int64]*model.Clinician{
			1: {ID: 1, FirstName: "JANE", LastName: "DOE", State: "CA", NPINumber: "1234567890"},
		},
	}
	return NewService(patientRepo, clinicianRepo), patientRepo, clinicianRepo
}

func TestCreatePatientStoresUppercaseNames(t *testing.T) {
	svc, _, _ := newTestService()

	patient, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		FirstName:   "Tom",
		LastName:    "Lee",
		ClinicianID: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "TOM", patient.FirstName)
	assert.Equal(t, "LEE", patient.LastName)
	assert.Equal(t, int64(1), patient.ClinicianID)
	assert.NotZero(t, patient.ID)
}

func TestCreatePatientUnknownClinician(t *testing.T) {
	svc, patientRepo, _ := newTestService()

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		FirstName:   "Tom",
		LastName:    "Lee",
		ClinicianID: 9999,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
	assert.Empty(t, patientRepo.patients, "no row may be persisted when the clinician is missing")
}

func TestDeletePatient(t *testing.T) {
	svc, _, _ := newTestService()

	patient, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		FirstName:   "Tom",
		LastName:    "Lee",
		ClinicianID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), patient.ID))

	patients, err := svc.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, patients)
}

func TestDeletePatientNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	for i := 0; i < 2; i++ {
		err := svc.DeletePatient(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
	}
}

func TestDeletePatientWithAppointmentsIsRejected(t *testing.T) {
	svc, patientRepo, _ := newTestService()

	patient, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		FirstName:   "Tom",
		LastName:    "Lee",
		ClinicianID: 1,
	})
	require.NoError(t, err)
	patientRepo.referenced[patient.ID] = true

	err = svc.DeletePatient(context.Background(), patient.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
}
