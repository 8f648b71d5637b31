package foliosdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Public content reads
// ============================================================================

func (c *Client) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/projects", nil)
	if err != nil {
		return nil, err
	}
	var out []ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSkills(ctx context.Context) ([]SkillResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/skills", nil)
	if err != nil {
		return nil, err
	}
	var out []SkillResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAbout(ctx context.Context) (*AboutResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/about", nil)
	if err != nil {
		return nil, err
	}
	var out AboutResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListExperiences(ctx context.Context) ([]ExperienceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/experiences", nil)
	if err != nil {
		return nil, err
	}
	var out []ExperienceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListEducations(ctx context.Context) ([]EducationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/educations", nil)
	if err != nil {
		return nil, err
	}
	var out []EducationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTestimonials(ctx context.Context) ([]TestimonialResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/testimonials", nil)
	if err != nil {
		return nil, err
	}
	var out []TestimonialResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSocialLinks(ctx context.Context) ([]SocialLinkResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/social-links", nil)
	if err != nil {
		return nil, err
	}
	var out []SocialLinkResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSettings(ctx context.Context) (*SettingResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/settings", nil)
	if err != nil {
		return nil, err
	}
	var out SettingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListServices(ctx context.Context) ([]ServiceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/services", nil)
	if err != nil {
		return nil, err
	}
	var out []ServiceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Contact form
// ============================================================================

// SubmitContact sends a message through the public contact form.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (*ContactMessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/contact", req)
	if err != nil {
		return nil, err
	}
	var out ContactMessageResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Invitation redemption
// ============================================================================

// ValidateInvitation previews an invitation code without consuming it.
func (c *Client) ValidateInvitation(ctx context.Context, code string) (*ValidateInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet,
		"/v1/invitations/validate?code="+url.QueryEscape(code), nil)
	if err != nil {
		return nil, err
	}
	var out ValidateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems an invitation code. The client must carry a
// bearer token from the identity provider; the resulting admin account is
// linked to that identity.
func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/accept", req)
	if err != nil {
		return nil, err
	}
	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Health
// ============================================================================

// GetLiveness checks whether the service process is up.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks whether the service can reach its dependencies.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}
	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
