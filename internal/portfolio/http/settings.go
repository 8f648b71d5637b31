package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type SettingsHandler struct {
	ContentService *service.ContentService
}

// HandleGet returns the site settings
//
//	@Summary	Get site settings
//	@Tags		Settings
//	@Produce	json
//	@Success	200	{object}	foliosdk.SettingResponse	"Settings"
//	@Failure	404	{object}	foliosdk.ErrorResponse		"Not configured yet"
//	@Router		/v1/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	setting, err := h.ContentService.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSettingResponse(setting))
}

// HandleUpsert creates or replaces the site settings
//
//	@Summary	Create or replace site settings
//	@Tags		Settings
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.SettingRequest		true	"Settings fields"
//	@Success	200		{object}	foliosdk.SettingResponse	"Stored settings"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/settings [put].
func (h *SettingsHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.SettingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	setting, err := h.ContentService.UpsertSettings(r.Context(), domain.Setting{
		SiteName:    req.SiteName,
		Description: req.Description,
		Keywords:    req.Keywords,
		Author:      req.Author,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Copyright:   req.Copyright,
		LogoURL:     req.LogoURL,
		FaviconURL:  req.FaviconURL,
		SocialURLs:  req.SocialURLs,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSettingResponse(setting))
}
