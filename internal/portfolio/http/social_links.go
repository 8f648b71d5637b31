package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type SocialLinksHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all social links
//
//	@Summary	List social links
//	@Tags		SocialLinks
//	@Produce	json
//	@Success	200	{array}	foliosdk.SocialLinkResponse	"Social links"
//	@Router		/v1/social-links [get].
func (h *SocialLinksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	links, err := h.ContentService.ListSocialLinks(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.SocialLinkResponse, len(links))
	for i, l := range links {
		out[i] = toSocialLinkResponse(l)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a social link
//
//	@Summary	Create a social link
//	@Tags		SocialLinks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.SocialLinkRequest	true	"Link fields"
//	@Success	201		{object}	foliosdk.SocialLinkResponse	"Created link"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/social-links [post].
func (h *SocialLinksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.SocialLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.ContentService.CreateSocialLink(r.Context(), domain.SocialLink{
		Platform: req.Platform,
		Icon:     req.Icon,
		URL:      req.URL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSocialLinkResponse(link))
}

// HandleUpdate replaces a social link
//
//	@Summary	Update a social link
//	@Tags		SocialLinks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Link ID"
//	@Param		request	body		foliosdk.SocialLinkRequest	true	"Link fields"
//	@Success	200		{object}	foliosdk.SocialLinkResponse	"Updated link"
//	@Failure	404		{object}	foliosdk.ErrorResponse		"Link not found"
//	@Security	BearerAuth
//	@Router		/v1/social-links/{id} [put].
func (h *SocialLinksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.SocialLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	link, err := h.ContentService.UpdateSocialLink(r.Context(), domain.SocialLink{
		ID:       r.PathValue("id"),
		Platform: req.Platform,
		Icon:     req.Icon,
		URL:      req.URL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSocialLinkResponse(link))
}

// HandleDelete removes a social link
//
//	@Summary	Delete a social link
//	@Tags		SocialLinks
//	@Param		id	path	string	true	"Link ID"
//	@Success	204	"Link deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Link not found"
//	@Security	BearerAuth
//	@Router		/v1/social-links/{id} [delete].
func (h *SocialLinksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteSocialLink(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
