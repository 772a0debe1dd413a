package clinician

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/service/clinician"
	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
	"github.com/jwalitptl/clinic-api/pkg/httputil"
)

type Handler struct {
	service clinician.ClinicianService
}

func NewHandler(service clinician.ClinicianService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires all three operations onto one resource path,
// multiplexed by method.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinicians := r.Group("/clinicians")
	{
		clinicians.GET("", h.ListClinicians)
		clinicians.POST("", h.CreateClinician)
		clinicians.DELETE("", h.DeleteClinician)
	}
}

func (h *Handler) ListClinicians(c *gin.Context) {
	clinicians, err := h.service.ListClinicians(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, clinicians)
}

func (h *Handler) CreateClinician(c *gin.Context) {
	var req model.CreateClinicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid clinician payload", err))
		return
	}

	if _, err := h.service.CreateClinician(c.Request.Context(), &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, http.StatusCreated, "Clinician created successfully")
}

func (h *Handler) DeleteClinician(c *gin.Context) {
	var req model.DeleteClinicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid clinician payload", err))
		return
	}

	if err := h.service.DeleteClinician(c.Request.Context(), req.ClinicianID); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, http.StatusOK, "Clinician deleted successfully")
}
