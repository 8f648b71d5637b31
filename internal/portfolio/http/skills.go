package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type SkillsHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all skills
//
//	@Summary	List skills
//	@Tags		Skills
//	@Produce	json
//	@Success	200	{array}	foliosdk.SkillResponse	"Skills"
//	@Router		/v1/skills [get].
func (h *SkillsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	skills, err := h.ContentService.ListSkills(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.SkillResponse, len(skills))
	for i, s := range skills {
		out[i] = toSkillResponse(s)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a skill
//
//	@Summary	Create a skill
//	@Tags		Skills
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.SkillRequest	true	"Skill fields"
//	@Success	201		{object}	foliosdk.SkillResponse	"Created skill"
//	@Failure	400		{object}	foliosdk.ErrorResponse	"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/skills [post].
func (h *SkillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.SkillRequest
	if !decodeBody(w, r, &req) {
		return
	}

	skill, err := h.ContentService.CreateSkill(r.Context(), domain.Skill{
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSkillResponse(skill))
}

// HandleUpdate replaces a skill
//
//	@Summary	Update a skill
//	@Tags		Skills
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Skill ID"
//	@Param		request	body		foliosdk.SkillRequest	true	"Skill fields"
//	@Success	200		{object}	foliosdk.SkillResponse	"Updated skill"
//	@Failure	404		{object}	foliosdk.ErrorResponse	"Skill not found"
//	@Security	BearerAuth
//	@Router		/v1/skills/{id} [put].
func (h *SkillsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.SkillRequest
	if !decodeBody(w, r, &req) {
		return
	}

	skill, err := h.ContentService.UpdateSkill(r.Context(), domain.Skill{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSkillResponse(skill))
}

// HandleDelete removes a skill
//
//	@Summary	Delete a skill
//	@Tags		Skills
//	@Param		id	path	string	true	"Skill ID"
//	@Success	204	"Skill deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Skill not found"
//	@Security	BearerAuth
//	@Router		/v1/skills/{id} [delete].
func (h *SkillsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteSkill(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
