package foliosdk

import "time"

// ErrorResponse is the standard error envelope used by every endpoint.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Roles and Accounts
// ============================================================================

// RoleResponse describes an admin role and its permission set.
type RoleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountResponse describes an admin account with its role joined in.
type AccountResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name,omitempty"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	Active      bool       `json:"active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UpdateProfileRequest is a partial update of the caller's own profile.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// SetActiveRequest flips another account's activation flag.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ============================================================================
// Invitations
// ============================================================================

// IssueInvitationRequest creates a new invitation for the given email,
// bound to the named role.
type IssueInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// InvitationResponse describes an invitation as seen by administrators.
// Status is reported with expiry applied, so a pending invitation past its
// deadline shows as "expired" even though the stored row is untouched.
type InvitationResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	InvitedBy   string     `json:"invited_by"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expires_at"`
	AcceptedBy  *string    `json:"accepted_by,omitempty"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CancelledBy *string    `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ValidateInvitationResponse is the public preview of an invitation code.
// It deliberately omits internal identifiers.
type ValidateInvitationResponse struct {
	Valid     bool      `json:"valid"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// AcceptInvitationRequest redeems an invitation code. The caller's identity
// comes from the bearer token, not the body.
type AcceptInvitationRequest struct {
	Code string `json:"code"`
}

// ============================================================================
// Content
// ============================================================================

type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	LinkURL     string   `json:"link_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	LinkURL     string    `json:"link_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillRequest struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type SkillResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AboutRequest struct {
	FullName   string `json:"full_name"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Title      string `json:"title,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
}

type AboutResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Title      string    `json:"title,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	PictureURL string    `json:"picture_url,omitempty"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ExperienceRequest struct {
	JobTitle    string     `json:"job_title"`
	Company     string     `json:"company"`
	LogoURL     string     `json:"logo_url,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
}

type ExperienceResponse struct {
	ID          string     `json:"id"`
	JobTitle    string     `json:"job_title"`
	Company     string     `json:"company"`
	LogoURL     string     `json:"logo_url,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EducationRequest struct {
	Degree         string     `json:"degree"`
	Institution    string     `json:"institution"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	LinkURL        string     `json:"link_url,omitempty"`
	CertificateURL string     `json:"certificate_url,omitempty"`
}

type EducationResponse struct {
	ID             string     `json:"id"`
	Degree         string     `json:"degree"`
	Institution    string     `json:"institution"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	LinkURL        string     `json:"link_url,omitempty"`
	CertificateURL string     `json:"certificate_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type TestimonialRequest struct {
	Name     string `json:"name"`
	Feedback string `json:"feedback"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Rating   int    `json:"rating,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type TestimonialResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Feedback  string    `json:"feedback"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform"`
	Icon     string `json:"icon,omitempty"`
	URL      string `json:"url"`
}

type SocialLinkResponse struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Icon      string    `json:"icon,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingRequest struct {
	SiteName    string            `json:"site_name"`
	Description string            `json:"description,omitempty"`
	Keywords    string            `json:"keywords,omitempty"`
	Author      string            `json:"author,omitempty"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	Copyright   string            `json:"copyright,omitempty"`
	LogoURL     string            `json:"logo_url,omitempty"`
	FaviconURL  string            `json:"favicon_url,omitempty"`
	SocialURLs  map[string]string `json:"social_urls,omitempty"`
}

type SettingResponse struct {
	ID          string            `json:"id"`
	SiteName    string            `json:"site_name"`
	Description string            `json:"description,omitempty"`
	Keywords    string            `json:"keywords,omitempty"`
	Author      string            `json:"author,omitempty"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	Copyright   string            `json:"copyright,omitempty"`
	LogoURL     string            `json:"logo_url,omitempty"`
	FaviconURL  string            `json:"favicon_url,omitempty"`
	SocialURLs  map[string]string `json:"social_urls,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ============================================================================
// Contact and Analytics
// ============================================================================

// ContactRequest is a visitor-submitted message from the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalyticsResponse is the dashboard summary: entity totals plus activity
// in the recent window.
type AnalyticsResponse struct {
	TotalProjects     int `json:"total_projects"`
	TotalSkills       int `json:"total_skills"`
	TotalExperiences  int `json:"total_experiences"`
	TotalContacts     int `json:"total_contacts"`
	TotalTestimonials int `json:"total_testimonials"`
	RecentContacts    int `json:"recent_contacts"`
	RecentProjects    int `json:"recent_projects"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse reports service health for the liveness and readiness
// probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
