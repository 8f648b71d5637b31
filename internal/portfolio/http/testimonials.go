package http

import (
	"net/http"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/foliohq/folio/pkg/httpx"
)

type TestimonialsHandler struct {
	ContentService *service.ContentService
}

// HandleList returns all testimonials
//
//	@Summary	List testimonials
//	@Tags		Testimonials
//	@Produce	json
//	@Success	200	{array}	foliosdk.TestimonialResponse	"Testimonials"
//	@Router		/v1/testimonials [get].
func (h *TestimonialsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.ContentService.ListTestimonials(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]foliosdk.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		out[i] = toTestimonialResponse(t)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a testimonial
//
//	@Summary	Create a testimonial
//	@Tags		Testimonials
//	@Accept		json
//	@Produce	json
//	@Param		request	body		foliosdk.TestimonialRequest		true	"Testimonial fields"
//	@Success	201		{object}	foliosdk.TestimonialResponse	"Created testimonial"
//	@Failure	400		{object}	foliosdk.ErrorResponse			"Validation failure"
//	@Security	BearerAuth
//	@Router		/v1/testimonials [post].
func (h *TestimonialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.TestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.ContentService.CreateTestimonial(r.Context(), domain.Testimonial{
		Name:     req.Name,
		Feedback: req.Feedback,
		Company:  req.Company,
		Position: req.Position,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTestimonialResponse(t))
}

// HandleUpdate replaces a testimonial
//
//	@Summary	Update a testimonial
//	@Tags		Testimonials
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Testimonial ID"
//	@Param		request	body		foliosdk.TestimonialRequest		true	"Testimonial fields"
//	@Success	200		{object}	foliosdk.TestimonialResponse	"Updated testimonial"
//	@Failure	404		{object}	foliosdk.ErrorResponse			"Testimonial not found"
//	@Security	BearerAuth
//	@Router		/v1/testimonials/{id} [put].
func (h *TestimonialsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.TestimonialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t, err := h.ContentService.UpdateTestimonial(r.Context(), domain.Testimonial{
		ID:       r.PathValue("id"),
		Name:     req.Name,
		Feedback: req.Feedback,
		Company:  req.Company,
		Position: req.Position,
		Rating:   req.Rating,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTestimonialResponse(t))
}

// HandleDelete removes a testimonial
//
//	@Summary	Delete a testimonial
//	@Tags		Testimonials
//	@Param		id	path	string	true	"Testimonial ID"
//	@Success	204	"Testimonial deleted"
//	@Failure	404	{object}	foliosdk.ErrorResponse	"Testimonial not found"
//	@Security	BearerAuth
//	@Router		/v1/testimonials/{id} [delete].
func (h *TestimonialsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentService.DeleteTestimonial(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
