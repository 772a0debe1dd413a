package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

func TestRespondWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			"validation",
			apperrors.Validation("invalid payload", nil),
			http.StatusBadRequest,
			`{"error": "invalid payload"}`,
		},
		{
			"invalid identity",
			apperrors.InvalidIdentity("NPI details do not match registry record"),
			http.StatusBadRequest,
			`{"error": "NPI details do not match registry record"}`,
		},
		{
			"not found",
			apperrors.NotFound("patient"),
			http.StatusNotFound,
			`{"error": "patient not found"}`,
		},
		{
			"conflict",
			apperrors.Conflict("clinician already exists", nil),
			http.StatusConflict,
			`{"error": "clinician already exists"}`,
		},
		{
			"registry unavailable",
			apperrors.RegistryUnavailable(errors.New("connection refused")),
			http.StatusBadGateway,
			`{"error": "identity registry unavailable"}`,
		},
		{
			"unknown errors never leak details",
			errors.New("pq: something sensitive"),
			http.StatusInternalServerError,
			`{"error": "internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondWithError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
