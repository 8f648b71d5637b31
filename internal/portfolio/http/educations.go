package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type EducationsHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all education entries
//
//	@Summary	List education entries
//	@Tags		Educations
//	@Produce	json
//	@Success	200	{array}	foliosdk.EducationResponse	"Education entries"
//	@Router		/v1/educations [get].
func (h *EducationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	educations, err := h.ContentService.ListEducations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.EducationResponse, len(educations))
	for i, e := range educations {
		out[i] = toEducationResponse(e)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates an education entry
//
//	@Summary	Create an education entry
//	@Tags		Educations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.EducationRequest	true	"Education fields"
//	@Success	201		{object}	foliosdk.EducationResponse	"Created entry"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/educations [post].
func (h *EducationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.EducationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	edu, err := h.ContentService.CreateEducation(r.Context(), domain.Education{
		Degree:         req.Degree,
		Institution:    req.Institution,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		LinkURL:        req.LinkURL,
		CertificateURL: req.CertificateURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEducationResponse(edu))
}

// HandleUpdate replaces an education entry
//
//	@Summary	Update an education entry
//	@Tags		Educations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Education ID"
//	@Param		request	body		foliosdk.EducationRequest	true	"Education fields"
//	@Success	200		{object}	foliosdk.EducationResponse	"Updated entry"
//	@Failure	404		{object}	foliosdk.ErrorResponse		"Entry not found"
//	@Security	BearerAuth
//	@Router		/v1/educations/{id} [put].
func (h *EducationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.EducationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	edu, err := h.ContentService.UpdateEducation(r.Context(), domain.Education{
		ID:             r.PathValue("id"),
		Degree:         req.Degree,
		Institution:    req.Institution,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		LinkURL:        req.LinkURL,
		CertificateURL: req.CertificateURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEducationResponse(edu))
}

// HandleDelete removes an education entry
//
//	@Summary	Delete an education entry
//	@Tags		Educations
//	@Param		id	path	string	true	"Education ID"
//	@Success	204	"Entry deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Entry not found"
//	@Security	BearerAuth
//	@Router		/v1/educations/{id} [delete].
func (h *EducationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteEducation(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
