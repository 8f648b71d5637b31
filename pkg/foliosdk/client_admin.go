package foliosdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Own profile
// ============================================================================

// GetMe returns the caller's own admin account.
func (c *Client) GetMe(ctx context.Context) (*AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}
	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe applies a partial update to the caller's own profile.
func (c *Client) UpdateMe(ctx context.Context, req UpdateProfileRequest) (*AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/me", req)
	if err != nil {
		return nil, err
	}
	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Roles and accounts
// ============================================================================

// ListRoles returns the roles visible to the caller. Superadmins and admins
// see all roles; everyone else only sees their own.
func (c *Client) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/roles", nil)
	if err != nil {
		return nil, err
	}
	var out []RoleResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAccounts returns all admin accounts, newest first.
func (c *Client) ListAccounts(ctx context.Context) ([]AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/accounts", nil)
	if err != nil {
		return nil, err
	}
	var out []AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// SetAccountActive flips another account's activation flag.
func (c *Client) SetAccountActive(ctx context.Context, accountID string, active bool) (*AccountResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/accounts/"+accountID,
		SetActiveRequest{Active: active})
	if err != nil {
		return nil, err
	}
	var out AccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes an admin account. Only superadmins may do this.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/accounts/"+accountID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Invitations
// ============================================================================

// IssueInvitation creates a new invitation.
func (c *Client) IssueInvitation(ctx context.Context, req IssueInvitationRequest) (*InvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations", req)
	if err != nil {
		return nil, err
	}
	var out InvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the invitations visible to the caller.
func (c *Client) ListInvitations(ctx context.Context) ([]InvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/invitations", nil)
	if err != nil {
		return nil, err
	}
	var out []InvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelInvitation revokes a pending invitation.
func (c *Client) CancelInvitation(ctx context.Context, invitationID string) (*InvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/"+invitationID+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	var out InvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Content management
// ============================================================================

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/projects", req)
	if err != nil {
		return nil, err
	}
	var out ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, req ProjectRequest) (*ProjectResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/projects/"+id, req)
	if err != nil {
		return nil, err
	}
	var out ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/projects/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) CreateSkill(ctx context.Context, req SkillRequest) (*SkillResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/skills", req)
	if err != nil {
		return nil, err
	}
	var out SkillResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, req SkillRequest) (*SkillResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/skills/"+id, req)
	if err != nil {
		return nil, err
	}
	var out SkillResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/skills/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UpsertAbout creates the about section or overwrites the existing one.
func (c *Client) UpsertAbout(ctx context.Context, req AboutRequest) (*AboutResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/about", req)
	if err != nil {
		return nil, err
	}
	var out AboutResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateExperience(ctx context.Context, req ExperienceRequest) (*ExperienceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/experiences", req)
	if err != nil {
		return nil, err
	}
	var out ExperienceResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(ctx context.Context, id string, req ExperienceRequest) (*ExperienceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/experiences/"+id, req)
	if err != nil {
		return nil, err
	}
	var out ExperienceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/experiences/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) CreateEducation(ctx context.Context, req EducationRequest) (*EducationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/educations", req)
	if err != nil {
		return nil, err
	}
	var out EducationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEducation(ctx context.Context, id string, req EducationRequest) (*EducationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/educations/"+id, req)
	if err != nil {
		return nil, err
	}
	var out EducationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/educations/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) CreateTestimonial(ctx context.Context, req TestimonialRequest) (*TestimonialResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/testimonials", req)
	if err != nil {
		return nil, err
	}
	var out TestimonialResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, req TestimonialRequest) (*TestimonialResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/testimonials/"+id, req)
	if err != nil {
		return nil, err
	}
	var out TestimonialResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/testimonials/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) CreateSocialLink(ctx context.Context, req SocialLinkRequest) (*SocialLinkResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/social-links", req)
	if err != nil {
		return nil, err
	}
	var out SocialLinkResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSocialLink(ctx context.Context, id string, req SocialLinkRequest) (*SocialLinkResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/social-links/"+id, req)
	if err != nil {
		return nil, err
	}
	var out SocialLinkResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSocialLink(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/social-links/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UpsertSettings creates the site settings or overwrites the existing ones.
func (c *Client) UpsertSettings(ctx context.Context, req SettingRequest) (*SettingResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/settings", req)
	if err != nil {
		return nil, err
	}
	var out SettingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateService(ctx context.Context, req ServiceRequest) (*ServiceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/services", req)
	if err != nil {
		return nil, err
	}
	var out ServiceResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, req ServiceRequest) (*ServiceResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/v1/services/"+id, req)
	if err != nil {
		return nil, err
	}
	var out ServiceResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/services/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Contact messages and analytics
// ============================================================================

// ListContactMessages returns submitted contact messages, newest first.
func (c *Client) ListContactMessages(ctx context.Context) ([]ContactMessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/contact-messages", nil)
	if err != nil {
		return nil, err
	}
	var out []ContactMessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAnalytics returns the dashboard summary.
func (c *Client) GetAnalytics(ctx context.Context) (*AnalyticsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/analytics", nil)
	if err != nil {
		return nil, err
	}
	var out AnalyticsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
