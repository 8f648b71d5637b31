package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the API error envelope.
// Anything unmapped is logged and reported as a 500 without leaking detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidContent),
		errors.Is(err, service.ErrInvalidInviteRequest),
		errors.Is(err, service.ErrInvalidContactMessage),
		errors.Is(err, service.ErrInviteNotAcceptable),
		errors.Is(err, service.ErrInvalidRole):
		foliosdk.NewAPIError(http.StatusBadRequest, foliosdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)

	case errors.Is(err, service.ErrContentNotFound),
		errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrInviteNotFound):
		foliosdk.ErrNotFound.WriteError(w)

	case errors.Is(err, service.ErrEmailAlreadyAdmin),
		errors.Is(err, service.ErrInvitePending),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyAdmin):
		foliosdk.NewAPIError(http.StatusConflict, foliosdk.ErrorCodeConflict, err.Error()).WriteError(w)

	case errors.Is(err, service.ErrSelfDeactivation),
		errors.Is(err, service.ErrSelfDeletion),
		errors.Is(err, service.ErrSuperadminRequired),
		errors.Is(err, service.ErrPeerSuperadmin),
		errors.Is(err, service.ErrCancelForbidden),
		errors.Is(err, service.ErrAccountInactive):
		foliosdk.NewAPIError(http.StatusForbidden, foliosdk.ErrorCodeForbidden, err.Error()).WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		foliosdk.ErrServerError.WriteError(w)
	}
}

// decodeBody parses a JSON request body into dst. On failure it writes the
// invalid_request envelope and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		foliosdk.NewAPIError(http.StatusBadRequest, foliosdk.ErrorCodeInvalidRequest, "malformed request body").WriteError(w)
		return false
	}
	return true
}
