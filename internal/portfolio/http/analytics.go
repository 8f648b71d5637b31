package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/httpx"
)

type AnalyticsHandler struct {
	AnalyticsService *service.AnalyticsService
}

// ServeHTTP handles the analytics summary endpoint
//
//	@Summary		Dashboard analytics
//	@Description	Returns entity totals plus counts of rows created within the last 30 days. Requires view_analytics.
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	foliosdk.AnalyticsResponse	"Summary"
//	@Failure		401	{object}	foliosdk.ErrorResponse		"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/analytics [get].
func (h *AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summary, err := h.AnalyticsService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAnalyticsResponse(summary))
}
