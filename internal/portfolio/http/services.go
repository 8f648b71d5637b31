package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type ServicesHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all offered services
//
//	@Summary	List services
//	@Tags		Services
//	@Produce	json
//	@Success	200	{array}	foliosdk.ServiceResponse	"Services"
//	@Router		/v1/services [get].
func (h *ServicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.ContentService.ListServices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.ServiceResponse, len(services))
	for i, s := range services {
		out[i] = toServiceResponse(s)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a service entry
//
//	@Summary	Create a service
//	@Tags		Services
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.ServiceRequest		true	"Service fields"
//	@Success	201		{object}	foliosdk.ServiceResponse	"Created service"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/services [post].
func (h *ServicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.ContentService.CreateService(r.Context(), domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toServiceResponse(svc))
}

// HandleUpdate replaces a service entry
//
//	@Summary	Update a service
//	@Tags		Services
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Service ID"
//	@Param		request	body		foliosdk.ServiceRequest		true	"Service fields"
//	@Success	200		{object}	foliosdk.ServiceResponse	"Updated service"
//	@Failure	404		{object}	foliosdk.ErrorResponse		"Service not found"
//	@Security	BearerAuth
//	@Router		/v1/services/{id} [put].
func (h *ServicesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.ContentService.UpdateService(r.Context(), domain.Service{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toServiceResponse(svc))
}

// HandleDelete removes a service entry
//
//	@Summary	Delete a service
//	@Tags		Services
//	@Param		id	path	string	true	"Service ID"
//	@Success	204	"Service deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Service not found"
//	@Security	BearerAuth
//	@Router		/v1/services/{id} [delete].
func (h *ServicesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
