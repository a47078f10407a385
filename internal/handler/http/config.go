package http

import (
	"net/http"

	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

// getResolvedConfig exposes the resolved runtime configuration for
// diagnostics. Only decision sources are reported: resolved URLs and
// override values never leave the process.
func (h *Handler) getResolvedConfig(w http.ResponseWriter, _ *http.Request) {
	sources := make(map[string]string, len(h.effective.Sources))
	for key, source := range h.effective.Sources {
		sources[key] = string(source)
	}

	features := make(map[string]bool, len(h.effective.Features))
	for name, enabled := range h.effective.Features {
		features[name] = enabled
	}

	response := models.ConfigResponse{
		Environment: string(h.effective.Environment),
		Tenant:      h.effective.Tenant,
		Features:    features,
		Sources:     sources,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
