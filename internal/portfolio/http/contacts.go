package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type ContactsHandler struct {
	ContactService *service.ContactService
}

// HandleSubmit stores a message from the public contact form
//
//	@Summary		Submit a contact message
//	@Description	Accepts a visitor message from the public contact form. Rate limited by IP.
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.ContactRequest			true	"Name, email and message"
//	@Success		201		{object}	foliosdk.ContactMessageResponse	"Stored message"
//	@Failure		400		{object}	foliosdk.ErrorResponse			"Validation failure"
//	@Router			/v1/contact [post].
func (h *ContactsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.ContactService.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toContactMessageResponse(msg))
}

// HandleList returns the stored contact messages
//
//	@Summary		List contact messages
//	@Description	Returns every stored visitor message, newest first. Requires view_analytics.
//	@Tags			Contact
//	@Produce		json
//	@Success		200	{array}		foliosdk.ContactMessageResponse	"Messages"
//	@Failure		401	{object}	foliosdk.ErrorResponse			"Unauthorized"
//	@Security		BearerAuth
//	@Router			/v1/contact-messages [get].
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.ContactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.ContactMessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = toContactMessageResponse(m)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
