package http

import (
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/service"
	"github.com/foliohq/folio/pkg/foliosdk"
)

// Mapping between domain entities and the wire types shared with the SDK.

func toRoleResponse(r domain.Role) foliosdk.RoleResponse {
	perms := make([]string, len(r.Permissions))
	for i, p := range r.Permissions {
		perms[i] = string(p)
	}
	return foliosdk.RoleResponse{
		ID:          r.ID,
		Name:        string(r.Name),
		Description: r.Description,
		Permissions: perms,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAccountResponse(a domain.AdminAccount) foliosdk.AccountResponse {
	perms := make([]string, len(a.Role.Permissions))
	for i, p := range a.Role.Permissions {
		perms[i] = string(p)
	}
	return foliosdk.AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Role:        string(a.Role.Name),
		Permissions: perms,
		Active:      a.Active,
		LastLogin:   a.LastLogin,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toInvitationResponse(inv domain.Invitation, now time.Time) foliosdk.InvitationResponse {
	return foliosdk.InvitationResponse{
		ID:          inv.ID,
		Code:        inv.Code,
		Email:       inv.Email,
		Role:        string(inv.Role.Name),
		InvitedBy:   inv.InvitedBy,
		Status:      string(service.EffectiveStatus(inv, now)),
		ExpiresAt:   inv.ExpiresAt,
		AcceptedBy:  inv.AcceptedBy,
		AcceptedAt:  inv.AcceptedAt,
		CancelledBy: inv.CancelledBy,
		CancelledAt: inv.CancelledAt,
		CreatedAt:   inv.CreatedAt,
	}
}

func toProjectResponse(p domain.Project) foliosdk.ProjectResponse {
	return foliosdk.ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		LinkURL:     p.LinkURL,
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toSkillResponse(s domain.Skill) foliosdk.SkillResponse {
	return foliosdk.SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Proficiency: s.Proficiency,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toAboutResponse(a domain.About) foliosdk.AboutResponse {
	return foliosdk.AboutResponse{
		ID:         a.ID,
		FullName:   a.FullName,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Title:      a.Title,
		Summary:    a.Summary,
		Email:      a.Email,
		Phone:      a.Phone,
		Address:    a.Address,
		PictureURL: a.PictureURL,
		ResumeURL:  a.ResumeURL,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toExperienceResponse(e domain.Experience) foliosdk.ExperienceResponse {
	return foliosdk.ExperienceResponse{
		ID:          e.ID,
		JobTitle:    e.JobTitle,
		Company:     e.Company,
		LogoURL:     e.LogoURL,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEducationResponse(e domain.Education) foliosdk.EducationResponse {
	return foliosdk.EducationResponse{
		ID:             e.ID,
		Degree:         e.Degree,
		Institution:    e.Institution,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		LinkURL:        e.LinkURL,
		CertificateURL: e.CertificateURL,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toTestimonialResponse(t domain.Testimonial) foliosdk.TestimonialResponse {
	return foliosdk.TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Feedback:  t.Feedback,
		Company:   t.Company,
		Position:  t.Position,
		Rating:    t.Rating,
		ImageURL:  t.ImageURL,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toSocialLinkResponse(l domain.SocialLink) foliosdk.SocialLinkResponse {
	return foliosdk.SocialLinkResponse{
		ID:        l.ID,
		Platform:  l.Platform,
		Icon:      l.Icon,
		URL:       l.URL,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toSettingResponse(s domain.Setting) foliosdk.SettingResponse {
	return foliosdk.SettingResponse{
		ID:          s.ID,
		SiteName:    s.SiteName,
		Description: s.Description,
		Keywords:    s.Keywords,
		Author:      s.Author,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Copyright:   s.Copyright,
		LogoURL:     s.LogoURL,
		FaviconURL:  s.FaviconURL,
		SocialURLs:  s.SocialURLs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toServiceResponse(s domain.Service) foliosdk.ServiceResponse {
	return foliosdk.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toContactMessageResponse(m domain.ContactMessage) foliosdk.ContactMessageResponse {
	return foliosdk.ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func toAnalyticsResponse(s domain.AnalyticsSummary) foliosdk.AnalyticsResponse {
	return foliosdk.AnalyticsResponse{
		TotalProjects:     s.TotalProjects,
		TotalSkills:       s.TotalSkills,
		TotalExperiences:  s.TotalExperiences,
		TotalContacts:     s.TotalContacts,
		TotalTestimonials: s.TotalTestimonials,
		RecentContacts:    s.RecentContacts,
		RecentProjects:    s.RecentProjects,
	}
}
