package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

// InvitationsPublicHandler serves the two endpoints reachable before an
// account exists: code validation (no token at all) and acceptance (a valid
// bearer token but no account yet).
type InvitationsPublicHandler struct {
	InviteService *service.InviteService
}

// HandleValidate previews an invitation code
//
//	@Summary		Validate an invitation code
//	@Description	Checks whether a code is still acceptable without consuming it. Unknown codes return 404; codes that exist but are expired, cancelled or already redeemed return 400.
//	@Tags			Invitations
//	@Produce		json
//	@Param			code	query		string								true	"Invitation code"
//	@Success		200		{object}	foliosdk.ValidateInvitationResponse	"Invitation preview"
//	@Failure		400		{object}	foliosdk.ErrorResponse				"Code no longer valid"
//	@Failure		404		{object}	foliosdk.ErrorResponse				"Unknown code"
//	@Router			/v1/invitations/validate [get].
func (h *InvitationsPublicHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		foliosdk.NewAPIError(http.StatusBadRequest, foliosdk.ErrorCodeInvalidRequest, "missing code parameter").WriteError(w)
		return
	}

	inv, err := h.InviteService.Validate(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, foliosdk.ValidateInvitationResponse{
		Valid:     true,
		Email:     inv.Email,
		Role:      string(inv.Role.Name),
		ExpiresAt: inv.ExpiresAt,
	})
}

// HandleAccept redeems an invitation code
//
//	@Summary		Accept an invitation
//	@Description	Redeems a code for the identity in the bearer token, creating the admin account with the invited role. Redemption is exactly-once.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.AcceptInvitationRequest	true	"Invitation code"
//	@Success		201		{object}	foliosdk.AccountResponse			"Created account"
//	@Failure		400		{object}	foliosdk.ErrorResponse				"Code no longer acceptable"
//	@Failure		401		{object}	foliosdk.ErrorResponse				"Unauthorized"
//	@Failure		404		{object}	foliosdk.ErrorResponse				"Unknown code"
//	@Failure		409		{object}	foliosdk.ErrorResponse				"Identity already an admin"
//	@Security		BearerAuth
//	@Router			/v1/invitations/accept [post].
func (h *InvitationsPublicHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ident, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req foliosdk.AcceptInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		foliosdk.NewAPIError(http.StatusBadRequest, foliosdk.ErrorCodeInvalidRequest, "missing invitation code").WriteError(w)
		return
	}

	account, err := h.InviteService.Accept(ctx, ident, req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAccountResponse(account))
}
