package v1alpha1

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/kubev2v/vdi-migration-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/vdi-migration-planner/pkg/version"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, mappers.InfoToApi(version.Get()))
}
