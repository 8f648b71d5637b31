package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type ExperiencesHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all experiences, current positions first
//
//	@Summary	List experiences
//	@Tags		Experiences
//	@Produce	json
//	@Success	200	{array}	foliosdk.ExperienceResponse	"Experiences"
//	@Router		/v1/experiences [get].
func (h *ExperiencesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.ContentService.ListExperiences(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.ExperienceResponse, len(experiences))
	for i, e := range experiences {
		out[i] = toExperienceResponse(e)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates an experience
//
//	@Summary	Create an experience
//	@Tags		Experiences
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.ExperienceRequest	true	"Experience fields"
//	@Success	201		{object}	foliosdk.ExperienceResponse	"Created experience"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/experiences [post].
func (h *ExperiencesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ExperienceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	exp, err := h.ContentService.CreateExperience(r.Context(), domain.Experience{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		LogoURL:     req.LogoURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toExperienceResponse(exp))
}

// HandleUpdate replaces an experience
//
//	@Summary	Update an experience
//	@Tags		Experiences
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Experience ID"
//	@Param		request	body		foliosdk.ExperienceRequest	true	"Experience fields"
//	@Success	200		{object}	foliosdk.ExperienceResponse	"Updated experience"
//	@Failure	404		{object}	foliosdk.ErrorResponse		"Experience not found"
//	@Security	BearerAuth
//	@Router		/v1/experiences/{id} [put].
func (h *ExperiencesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ExperienceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	exp, err := h.ContentService.UpdateExperience(r.Context(), domain.Experience{
		ID:          r.PathValue("id"),
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		LogoURL:     req.LogoURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExperienceResponse(exp))
}

// HandleDelete removes an experience
//
//	@Summary	Delete an experience
//	@Tags		Experiences
//	@Param		id	path	string	true	"Experience ID"
//	@Success	204	"Experience deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Experience not found"
//	@Security	BearerAuth
//	@Router		/v1/experiences/{id} [delete].
func (h *ExperiencesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteExperience(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
