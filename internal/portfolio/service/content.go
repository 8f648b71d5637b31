package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
	"github.com/foliohq/folio/pkg/idx"
	"github.com/foliohq/folio/pkg/slogx"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrInvalidContent  = errors.New("invalid content")
)

// ContentService owns the portfolio content plane: CRUD over the list
// entities and upsert semantics over the About and Setting singletons.
type ContentService struct {
	Store store.Store
}

func mapContentErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrContentNotFound
	}
	return err
}

// --- Projects ------------------------------------------------------------

func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ContentService) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.Title == "" {
		return domain.Project{}, ErrInvalidContent
	}
	p.ID = idx.New().String()
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		slogx.FromContext(ctx).Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}
	return s.Store.Projects().GetProjectByID(ctx, p.ID)
}

func (s *ContentService) UpdateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.Title == "" {
		return domain.Project{}, ErrInvalidContent
	}
	if err := s.Store.Projects().UpdateProject(ctx, p); err != nil {
		return domain.Project{}, mapContentErr(err)
	}
	return s.Store.Projects().GetProjectByID(ctx, p.ID)
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Projects().DeleteProject(ctx, id))
}

// --- Skills --------------------------------------------------------------

func (s *ContentService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.Store.Skills().ListSkills(ctx)
}

func (s *ContentService) CreateSkill(ctx context.Context, sk domain.Skill) (domain.Skill, error) {
	if sk.Name == "" || sk.Proficiency < 0 || sk.Proficiency > 100 {
		return domain.Skill{}, ErrInvalidContent
	}
	sk.ID = idx.New().String()
	if err := s.Store.Skills().CreateSkill(ctx, sk); err != nil {
		slogx.FromContext(ctx).Error("failed to create skill", slog.Any("error", err))
		return domain.Skill{}, err
	}
	return s.Store.Skills().GetSkillByID(ctx, sk.ID)
}

func (s *ContentService) UpdateSkill(ctx context.Context, sk domain.Skill) (domain.Skill, error) {
	if sk.Name == "" || sk.Proficiency < 0 || sk.Proficiency > 100 {
		return domain.Skill{}, ErrInvalidContent
	}
	if err := s.Store.Skills().UpdateSkill(ctx, sk); err != nil {
		return domain.Skill{}, mapContentErr(err)
	}
	return s.Store.Skills().GetSkillByID(ctx, sk.ID)
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Skills().DeleteSkill(ctx, id))
}

// --- About (singleton) ---------------------------------------------------

func (s *ContentService) GetAbout(ctx context.Context) (domain.About, error) {
	about, err := s.Store.About().GetAbout(ctx)
	return about, mapContentErr(err)
}

// UpsertAbout creates the About row or overwrites it in place; the caller
// never needs to know whether one existed.
func (s *ContentService) UpsertAbout(ctx context.Context, a domain.About) (domain.About, error) {
	if a.FullName == "" {
		return domain.About{}, ErrInvalidContent
	}
	a.ID = idx.New().String()
	about, err := s.Store.About().UpsertAbout(ctx, a)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to upsert about", slog.Any("error", err))
	}
	return about, err
}

// --- Experiences ---------------------------------------------------------

func (s *ContentService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.Store.Experiences().ListExperiences(ctx)
}

func validExperience(e domain.Experience) bool {
	if e.JobTitle == "" || e.Company == "" || e.StartDate.IsZero() {
		return false
	}
	return e.EndDate == nil || !e.EndDate.Before(e.StartDate)
}

func (s *ContentService) CreateExperience(ctx context.Context, e domain.Experience) (domain.Experience, error) {
	if !validExperience(e) {
		return domain.Experience{}, ErrInvalidContent
	}
	e.ID = idx.New().String()
	if err := s.Store.Experiences().CreateExperience(ctx, e); err != nil {
		slogx.FromContext(ctx).Error("failed to create experience", slog.Any("error", err))
		return domain.Experience{}, err
	}
	return s.Store.Experiences().GetExperienceByID(ctx, e.ID)
}

func (s *ContentService) UpdateExperience(ctx context.Context, e domain.Experience) (domain.Experience, error) {
	if !validExperience(e) {
		return domain.Experience{}, ErrInvalidContent
	}
	if err := s.Store.Experiences().UpdateExperience(ctx, e); err != nil {
		return domain.Experience{}, mapContentErr(err)
	}
	return s.Store.Experiences().GetExperienceByID(ctx, e.ID)
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Experiences().DeleteExperience(ctx, id))
}

// --- Educations ----------------------------------------------------------

func (s *ContentService) ListEducations(ctx context.Context) ([]domain.Education, error) {
	return s.Store.Educations().ListEducations(ctx)
}

func validEducation(e domain.Education) bool {
	if e.Degree == "" || e.Institution == "" || e.StartDate.IsZero() {
		return false
	}
	return e.EndDate == nil || !e.EndDate.Before(e.StartDate)
}

func (s *ContentService) CreateEducation(ctx context.Context, e domain.Education) (domain.Education, error) {
	if !validEducation(e) {
		return domain.Education{}, ErrInvalidContent
	}
	e.ID = idx.New().String()
	if err := s.Store.Educations().CreateEducation(ctx, e); err != nil {
		slogx.FromContext(ctx).Error("failed to create education", slog.Any("error", err))
		return domain.Education{}, err
	}
	return s.Store.Educations().GetEducationByID(ctx, e.ID)
}

func (s *ContentService) UpdateEducation(ctx context.Context, e domain.Education) (domain.Education, error) {
	if !validEducation(e) {
		return domain.Education{}, ErrInvalidContent
	}
	if err := s.Store.Educations().UpdateEducation(ctx, e); err != nil {
		return domain.Education{}, mapContentErr(err)
	}
	return s.Store.Educations().GetEducationByID(ctx, e.ID)
}

func (s *ContentService) DeleteEducation(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Educations().DeleteEducation(ctx, id))
}

// --- Testimonials --------------------------------------------------------

func (s *ContentService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.Store.Testimonials().ListTestimonials(ctx)
}

func validTestimonial(t domain.Testimonial) bool {
	return t.Name != "" && t.Feedback != "" && t.Rating >= 1 && t.Rating <= 5
}

func (s *ContentService) CreateTestimonial(ctx context.Context, t domain.Testimonial) (domain.Testimonial, error) {
	if !validTestimonial(t) {
		return domain.Testimonial{}, ErrInvalidContent
	}
	t.ID = idx.New().String()
	if err := s.Store.Testimonials().CreateTestimonial(ctx, t); err != nil {
		slogx.FromContext(ctx).Error("failed to create testimonial", slog.Any("error", err))
		return domain.Testimonial{}, err
	}
	return s.Store.Testimonials().GetTestimonialByID(ctx, t.ID)
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, t domain.Testimonial) (domain.Testimonial, error) {
	if !validTestimonial(t) {
		return domain.Testimonial{}, ErrInvalidContent
	}
	if err := s.Store.Testimonials().UpdateTestimonial(ctx, t); err != nil {
		return domain.Testimonial{}, mapContentErr(err)
	}
	return s.Store.Testimonials().GetTestimonialByID(ctx, t.ID)
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Testimonials().DeleteTestimonial(ctx, id))
}

// --- Social links --------------------------------------------------------

func (s *ContentService) ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	return s.Store.SocialLinks().ListSocialLinks(ctx)
}

func (s *ContentService) CreateSocialLink(ctx context.Context, l domain.SocialLink) (domain.SocialLink, error) {
	if l.Platform == "" || l.URL == "" {
		return domain.SocialLink{}, ErrInvalidContent
	}
	l.ID = idx.New().String()
	if err := s.Store.SocialLinks().CreateSocialLink(ctx, l); err != nil {
		slogx.FromContext(ctx).Error("failed to create social link", slog.Any("error", err))
		return domain.SocialLink{}, err
	}
	return s.Store.SocialLinks().GetSocialLinkByID(ctx, l.ID)
}

func (s *ContentService) UpdateSocialLink(ctx context.Context, l domain.SocialLink) (domain.SocialLink, error) {
	if l.Platform == "" || l.URL == "" {
		return domain.SocialLink{}, ErrInvalidContent
	}
	if err := s.Store.SocialLinks().UpdateSocialLink(ctx, l); err != nil {
		return domain.SocialLink{}, mapContentErr(err)
	}
	return s.Store.SocialLinks().GetSocialLinkByID(ctx, l.ID)
}

func (s *ContentService) DeleteSocialLink(ctx context.Context, id string) error {
	return mapContentErr(s.Store.SocialLinks().DeleteSocialLink(ctx, id))
}

// --- Settings (singleton) ------------------------------------------------

func (s *ContentService) GetSettings(ctx context.Context) (domain.Setting, error) {
	setting, err := s.Store.Settings().GetSetting(ctx)
	return setting, mapContentErr(err)
}

func (s *ContentService) UpsertSettings(ctx context.Context, set domain.Setting) (domain.Setting, error) {
	if set.SiteName == "" {
		return domain.Setting{}, ErrInvalidContent
	}
	set.ID = idx.New().String()
	setting, err := s.Store.Settings().UpsertSetting(ctx, set)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to upsert settings", slog.Any("error", err))
	}
	return setting, err
}

// --- Services ------------------------------------------------------------

func (s *ContentService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.Store.Services().ListServices(ctx)
}

func (s *ContentService) CreateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	if svc.Name == "" {
		return domain.Service{}, ErrInvalidContent
	}
	svc.ID = idx.New().String()
	if err := s.Store.Services().CreateService(ctx, svc); err != nil {
		slogx.FromContext(ctx).Error("failed to create service", slog.Any("error", err))
		return domain.Service{}, err
	}
	return s.Store.Services().GetServiceByID(ctx, svc.ID)
}

func (s *ContentService) UpdateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	if svc.Name == "" {
		return domain.Service{}, ErrInvalidContent
	}
	if err := s.Store.Services().UpdateService(ctx, svc); err != nil {
		return domain.Service{}, mapContentErr(err)
	}
	return s.Store.Services().GetServiceByID(ctx, svc.ID)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return mapContentErr(s.Store.Services().DeleteService(ctx, id))
}
