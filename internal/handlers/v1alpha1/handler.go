package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/kubev2v/vdi-migration-planner/api/v1alpha1"
	"github.com/kubev2v/vdi-migration-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/vdi-migration-planner/internal/handlers/validator"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
	"github.com/kubev2v/vdi-migration-planner/pkg/requestid"
)

type ServiceHandler struct {
	assessmentSrv *service.AssessmentService
	validator     *validator.Validator
}

func NewServiceHandler(assessmentService *service.AssessmentService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewAssessmentValidationRules()...)

	return &ServiceHandler{
		assessmentSrv: assessmentService,
		validator:     v,
	}
}

// RegisterRoutes mounts the API on router.
func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", h.CreateAssessment)
		r.Get("/catalog", h.GetCatalog)
		r.Get("/info", h.GetInfo)
	})
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, v1alpha1.Health{Status: "ok"})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, mappers.ErrorToApi(message, requestid.FromRequest(r)))
}
