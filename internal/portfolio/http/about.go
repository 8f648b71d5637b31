package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type AboutHandler struct {
	ContentService *service.ContentService
}

// HandleGet returns the About section
//
//	@Summary	Get the about section
//	@Tags		About
//	@Produce	json
//	@Success	200	{object}	foliosdk.AboutResponse	"About"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Not configured yet"
//	@Router		/v1/about [get].
func (h *AboutHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	about, err := h.ContentService.GetAbout(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAboutResponse(about))
}

// HandleUpsert creates or replaces the About section
//
//	@Summary	Create or replace the about section
//	@Tags		About
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.AboutRequest	true	"About fields"
//	@Success	200		{object}	foliosdk.AboutResponse	"Stored about section"
//	@Failure	400		{object}	foliosdk.ErrorResponse	"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/about [put].
func (h *AboutHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.AboutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	about, err := h.ContentService.UpsertAbout(r.Context(), domain.About{
		FullName:   req.FullName,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Title:      req.Title,
		Summary:    req.Summary,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		PictureURL: req.PictureURL,
		ResumeURL:  req.ResumeURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAboutResponse(about))
}
