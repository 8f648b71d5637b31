package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type MeHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleGet returns the caller's own account
//
//	@Summary		Get own account
//	@Description	Returns the caller's admin account with its role and permission set.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	foliosdk.AccountResponse	"Caller's account"
//	@Failure		401	{object}	foliosdk.ErrorResponse		"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	account, ok := accountFromContext(r.Context())
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandlePatch updates the caller's own profile
//
//	@Summary		Update own profile
//	@Description	Partially updates the caller's display name or email. Omitted fields are left unchanged.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.UpdateProfileRequest	true	"Profile fields to change"
//	@Success		200		{object}	foliosdk.AccountResponse		"Updated account"
//	@Failure		401		{object}	foliosdk.ErrorResponse			"Unauthorized"
//	@Failure		409		{object}	foliosdk.ErrorResponse			"Email already in use"
//	@Security		BearerAuth
//	@Router			/v1/me [patch].
func (h *MeHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req foliosdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.DirectoryService.UpdateProfile(ctx, account.ID, domain.ProfilePatch{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(updated))
}
