package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type ProjectsHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all projects
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Success	200	{array}	foliosdk.ProjectResponse	"Projects"
//	@Router		/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ContentService.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = toProjectResponse(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a project
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.ProjectRequest		true	"Project fields"
//	@Success	201		{object}	foliosdk.ProjectResponse	"Created project"
//	@Failure	400		{object}	foliosdk.ErrorResponse		"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	project, err := h.ContentService.CreateProject(r.Context(), domain.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		Tags:        req.Tags,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(project))
}

// HandleUpdate replaces a project
//
//	@Summary	Update a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Project ID"
//	@Param		request	body		foliosdk.ProjectRequest		true	"Project fields"
//	@Success	200		{object}	foliosdk.ProjectResponse	"Updated project"
//	@Failure	404		{object}	foliosdk.ErrorResponse		"Project not found"
//	@Security	BearerAuth
//	@Router		/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	project, err := h.ContentService.UpdateProject(r.Context(), domain.Project{
		ID:          r.PathValue("id"),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LinkURL:     req.LinkURL,
		Tags:        req.Tags,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleDelete removes a project
//
//	@Summary	Delete a project
//	@Tags		Projects
//	@Param		id	path	string	true	"Project ID"
//	@Success	204	"Project deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Project not found"
//	@Security	BearerAuth
//	@Router		/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
