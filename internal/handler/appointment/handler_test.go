package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-api/internal/model"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

type fakeService struct {
	appointments []*model.Appointment
	createErr    error
	deleteErr    error
	deletedID    int64
}

func (s *fakeService) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.appointments, nil
}

func (s *fakeService) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.Appointment{ID: 1, Date: req.Date, Time: req.Time, PatientID: req.PatientID}, nil
}

func (s *fakeService) DeleteAppointment(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/"))
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAppointments(t *testing.T) {
	r := setupRouter(&fakeService{appointments: []*model.Appointment{
		{ID: 1, Date: "2024-01-01", Time: "10:00", PatientID: 5},
	}})

	w := doRequest(r, http.MethodGet, "/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(1), body[0]["id"])
	assert.Equal(t, "2024-01-01", body[0]["date"])
	assert.Equal(t, "10:00", body[0]["time"])
	assert.Equal(t, float64(5), body[0]["patient_id"])
}

func TestCreateAppointment(t *testing.T) {
	r := setupRouter(&fakeService{})

	w := doRequest(r, http.MethodPost, "/appointments", gin.H{
		"date":       "2024-01-01",
		"time":       "10:00",
		"patient_id": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "Appointment created successfully"}`, w.Body.String())
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	r := setupRouter(&fakeService{createErr: apperrors.NotFound("patient")})

	w := doRequest(r, http.MethodPost, "/appointments", gin.H{
		"date":       "2024-01-01",
		"time":       "10:00",
		"patient_id": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "patient not found"}`, w.Body.String())
}

func TestCreateAppointmentRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"missing date", gin.H{"time": "10:00", "patient_id": 5}},
		{"missing time", gin.H{"date": "2024-01-01", "patient_id": 5}},
		{"missing patient_id", gin.H{"date": "2024-01-01", "time": "10:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&fakeService{})
			w := doRequest(r, http.MethodPost, "/appointments", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestDeleteAppointment(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodDelete, "/appointments", gin.H{"appointment_id": 8})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Appointment deleted successfully"}`, w.Body.String())
	assert.Equal(t, int64(8), svc.deletedID)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	r := setupRouter(&fakeService{deleteErr: apperrors.NotFound("appointment")})

	w := doRequest(r, http.MethodDelete, "/appointments", gin.H{"appointment_id": 9999})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "appointment not found"}`, w.Body.String())
}
