package http

import (
	"net/http"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type InvitationsHandler struct {
	InviteService *service.InviteService
}

// HandleIssue creates a new invitation
//
//	@Summary		Issue an invitation
//	@Description	Creates a pending invitation binding an email address to a role. The returned code is the capability needed to accept it.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.IssueInvitationRequest	true	"Email and role"
//	@Success		201		{object}	foliosdk.InvitationResponse		"Created invitation"
//	@Failure		400		{object}	foliosdk.ErrorResponse			"Invalid email or role"
//	@Failure		409		{object}	foliosdk.ErrorResponse			"Email already an admin or already invited"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req foliosdk.IssueInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.InviteService.Issue(ctx, caller, req.Email, domain.RoleName(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv, time.Now().UTC()))
}

// HandleList returns the invitations visible to the caller
//
//	@Summary		List invitations
//	@Description	Account managers see every invitation; plain inviters see only their own. Pending invitations past expiry are reported as expired.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{array}		foliosdk.InvitationResponse	"Invitations"
//	@Failure		401	{object}	foliosdk.ErrorResponse		"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	invs, err := h.InviteService.ListVisible(ctx, caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	now := time.Now().UTC()
	out := make([]foliosdk.InvitationResponse, len(invs))
	for i, inv := range invs {
		out[i] = toInvitationResponse(inv, now)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCancel voids a pending invitation
//
//	@Summary		Cancel an invitation
//	@Description	Transitions a pending invitation to cancelled. Only pending invitations can be cancelled.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string						true	"Invitation ID"
//	@Success		200	{object}	foliosdk.InvitationResponse	"Cancelled invitation"
//	@Failure		403	{object}	foliosdk.ErrorResponse		"Not the inviter"
//	@Failure		404	{object}	foliosdk.ErrorResponse		"Invitation not found"
//	@Failure		409	{object}	foliosdk.ErrorResponse		"Invitation no longer pending"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/cancel [post].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := accountFromContext(ctx)
	if !ok {
		foliosdk.ErrInvalidToken.WriteError(w)
		return
	}

	inv, err := h.InviteService.Cancel(ctx, caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv, time.Now().UTC()))
}
