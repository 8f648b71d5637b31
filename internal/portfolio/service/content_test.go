package service

import (
	"context"
	"testing"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/stretchr/testify/require"
)

func TestProjectCRUD(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	created, err := svc.CreateProject(ctx, domain.Project{
		Title: "Folio",
		Tags:  []string{"go", "sqlite"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{"go", "sqlite"}, created.Tags)

	created.Description = "portfolio backend"
	updated, err := svc.UpdateProject(ctx, created)
	require.NoError(t, err)
	require.Equal(t, "portfolio backend", updated.Description)

	require.NoError(t, svc.DeleteProject(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteProject(ctx, created.ID), ErrContentNotFound)
}

func TestProjectTagsRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	created, err := svc.CreateProject(ctx, domain.Project{
		Title: "Folio",
		Tags:  []string{"machine learning", "go"},
	})
	require.NoError(t, err)

	stored, err := st.Projects().GetProjectByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"machine learning", "go"}, stored.Tags)
}

func TestProjectValidation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &ContentService{Store: st}

	_, err := svc.CreateProject(context.Background(), domain.Project{})
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestSkillProficiencyBounds(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	_, err := svc.CreateSkill(ctx, domain.Skill{Name: "Go", Proficiency: 101})
	require.ErrorIs(t, err, ErrInvalidContent)

	_, err = svc.CreateSkill(ctx, domain.Skill{Name: "Go", Proficiency: -1})
	require.ErrorIs(t, err, ErrInvalidContent)

	skill, err := svc.CreateSkill(ctx, domain.Skill{Name: "Go", Proficiency: 90})
	require.NoError(t, err)
	require.Equal(t, 90, skill.Proficiency)
}

func TestAboutSingleton(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	_, err := svc.GetAbout(ctx)
	require.ErrorIs(t, err, ErrContentNotFound)

	first, err := svc.UpsertAbout(ctx, domain.About{FullName: "Jane Doe", Title: "Engineer"})
	require.NoError(t, err)

	// A second upsert overwrites in place; the row identity is stable.
	second, err := svc.UpsertAbout(ctx, domain.About{FullName: "Jane Doe", Title: "Staff Engineer"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Staff Engineer", second.Title)
	require.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestSettingsSingleton(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	first, err := svc.UpsertSettings(ctx, domain.Setting{
		SiteName:   "Jane's Portfolio",
		SocialURLs: map[string]string{"github": "https://github.com/jane"},
	})
	require.NoError(t, err)

	second, err := svc.UpsertSettings(ctx, domain.Setting{SiteName: "Jane Doe"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Jane Doe", second.SiteName)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", got.SiteName)
}

func TestExperienceDateOrdering(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	past := start.AddDate(2, 0, 0)

	_, err := svc.CreateExperience(ctx, domain.Experience{
		JobTitle: "Engineer", Company: "Oldco",
		StartDate: start, EndDate: &past,
	})
	require.NoError(t, err)

	_, err = svc.CreateExperience(ctx, domain.Experience{
		JobTitle: "Engineer", Company: "Newco",
		StartDate: past,
	})
	require.NoError(t, err)

	// Current positions sort before finished ones.
	experiences, err := svc.ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	require.Equal(t, "Newco", experiences[0].Company)

	// End before start is rejected.
	before := start.AddDate(-1, 0, 0)
	_, err = svc.CreateExperience(ctx, domain.Experience{
		JobTitle: "Engineer", Company: "Badco",
		StartDate: start, EndDate: &before,
	})
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestTestimonialRatingBounds(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	svc := &ContentService{Store: st}

	_, err := svc.CreateTestimonial(ctx, domain.Testimonial{Name: "A", Feedback: "Great", Rating: 6})
	require.ErrorIs(t, err, ErrInvalidContent)

	created, err := svc.CreateTestimonial(ctx, domain.Testimonial{Name: "A", Feedback: "Great", Rating: 5})
	require.NoError(t, err)
	require.Equal(t, 5, created.Rating)
}
