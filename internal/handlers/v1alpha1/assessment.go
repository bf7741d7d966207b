package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/kubev2v/vdi-migration-planner/api/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/vdi-migration-planner/internal/handlers/validator"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
	"github.com/kubev2v/vdi-migration-planner/pkg/log"
)

// (POST /api/v1/assessments)
func (h *ServiceHandler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.NewDebugLogger("assessment_handler").
		WithContext(ctx).
		Operation("create_assessment").
		Build()

	var body v1alpha1.AssessmentRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request body: %s", err))
		return
	}

	if err := h.validator.Struct(body); err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, validator.Message(err))
		return
	}

	input, err := mappers.AssessmentInputFromApi(body)
	if err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	logger.Step("mapped_input").WithInt("total_users", input.Population.Total()).Log()

	result, err := h.assessmentSrv.RunAssessment(ctx, input)
	if err != nil {
		var emptyErr *service.ErrEmptyPopulation
		var invalidErr *service.ErrInvalidAssessmentRequest
		switch {
		case errors.As(err, &emptyErr):
			logger.Error(err).Log()
			renderError(w, r, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &invalidErr):
			logger.Error(err).Log()
			renderError(w, r, http.StatusBadRequest, err.Error())
		default:
			logger.Error(err).Log()
			renderError(w, r, http.StatusInternalServerError, "failed to run assessment")
		}
		return
	}

	logger.Success().WithUUID("assessment_id", result.ID).Log()

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// (GET /api/v1/catalog)
func (h *ServiceHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.assessmentSrv.Catalog(r.Context()))
}
