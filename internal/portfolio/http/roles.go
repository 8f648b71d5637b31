package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// ServeHTTP handles the list roles endpoint
//
//	@Summary		List roles
//	@Description	Returns the roles visible to the caller. Superadmins and admins see the whole registry; everyone else sees only their own role.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{array}		foliosdk.RoleResponse	"Roles"
//	@Failure		401	{object}	foliosdk.ErrorResponse	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	roles, err := h.RolesService.ListVisible(ctx, caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]foliosdk.RoleResponse, len(roles))
	for i, role := range roles {
		out[i] = toRoleResponse(role)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
