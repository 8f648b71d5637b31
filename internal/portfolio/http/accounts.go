package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type AccountsHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleList returns the accounts visible to the caller
//
//	@Summary		List admin accounts
//	@Description	Returns the accounts the caller may see. Account managers get the whole directory newest first; everyone else gets a single-element list holding their own account.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{array}		foliosdk.AccountResponse	"Accounts"
//	@Failure		401	{object}	foliosdk.ErrorResponse		"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/accounts [get].
func (h *AccountsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	accounts, err := h.DirectoryService.ListVisible(ctx, caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]foliosdk.AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetActive flips an account's activation flag
//
//	@Summary		Activate or deactivate an account
//	@Description	Sets the activation flag on another account. Callers cannot deactivate themselves.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Account ID"
//	@Param			request	body		foliosdk.SetActiveRequest	true	"New activation state"
//	@Success		200		{object}	foliosdk.AccountResponse	"Updated account"
//	@Failure		403		{object}	foliosdk.ErrorResponse		"Forbidden"
//	@Failure		404		{object}	foliosdk.ErrorResponse		"Account not found"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [patch].
func (h *AccountsHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req foliosdk.SetActiveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.DirectoryService.SetActive(ctx, caller, r.PathValue("id"), req.Active)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(updated))
}

// HandleDelete removes an account
//
//	@Summary		Delete an admin account
//	@Description	Removes an account outright. Superadmins only; self-deletion and deleting fellow superadmins are refused.
//	@Tags			Accounts
//	@Param			id	path	string	true	"Account ID"
//	@Success		204	"Account deleted"
//	@Failure		403	{object}	foliosdk.ErrorResponse	"Forbidden"
//	@Failure		404	{object}	foliosdk.ErrorResponse	"Account not found"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.DirectoryService.Delete(ctx, caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
