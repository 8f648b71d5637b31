package api_test

import (
	"testing"
	"time"

	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

// inviteAs onboards a fresh identity with the given role and returns a
// client authenticated as it.
func inviteAs(t *testing.T, srv *testServer, super *foliosdk.Client, role, subject, email string) *foliosdk.Client {
	t.Helper()
	ctx := t.Context()

	inv, err := super.IssueInvitation(ctx, foliosdk.IssueInvitationRequest{Email: email, Role: role})
	require.NoError(t, err)

	c := srv.As(t, subject, email, "")
	_, err = c.AcceptInvitation(ctx, foliosdk.AcceptInvitationRequest{Code: inv.Code})
	require.NoError(t, err)
	return c
}

func TestContentManagement(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	editor := inviteAs(t, srv, super, "editor", "subject-editor", "editor@example.com")

	project, err := editor.CreateProject(ctx, foliosdk.ProjectRequest{
		Title:       "Telemetry Pipeline",
		Description: "Streaming ingest with hourly rollups.",
		Tags:        []string{"go", "sqlite"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)

	project, err = editor.UpdateProject(ctx, project.ID, foliosdk.ProjectRequest{
		Title: "Telemetry Pipeline v2",
		Tags:  []string{"go"},
	})
	require.NoError(t, err)
	require.Equal(t, "Telemetry Pipeline v2", project.Title)

	skill, err := editor.CreateSkill(ctx, foliosdk.SkillRequest{Name: "Go", Proficiency: 90})
	require.NoError(t, err)

	// Public reads need no token.
	projects, err := srv.Client.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "Telemetry Pipeline v2", projects[0].Title)

	skills, err := srv.Client.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)

	require.NoError(t, editor.DeleteSkill(ctx, skill.ID))
	skills, err = srv.Client.ListSkills(ctx)
	require.NoError(t, err)
	require.Empty(t, skills)
}

func TestContentPermissionBoundaries(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	editor := inviteAs(t, srv, super, "editor", "subject-editor", "editor@example.com")
	viewer := inviteAs(t, srv, super, "viewer", "subject-viewer", "viewer@example.com")

	var apiErr *foliosdk.APIError

	// Viewers cannot write content.
	_, err := viewer.CreateProject(ctx, foliosdk.ProjectRequest{Title: "Nope"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	// Editors cannot touch site settings.
	_, err = editor.UpsertSettings(ctx, foliosdk.SettingRequest{SiteName: "Nope"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)

	// Anonymous writes are rejected outright.
	_, err = srv.Client.CreateProject(ctx, foliosdk.ProjectRequest{Title: "Nope"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}

func TestAboutAndSettingsSingletons(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	about, err := super.UpsertAbout(ctx, foliosdk.AboutRequest{
		FullName: "Jane Doe",
		Title:    "Backend Engineer",
	})
	require.NoError(t, err)

	again, err := super.UpsertAbout(ctx, foliosdk.AboutRequest{
		FullName: "Jane Doe",
		Title:    "Staff Engineer",
	})
	require.NoError(t, err)
	require.Equal(t, about.ID, again.ID)

	got, err := srv.Client.GetAbout(ctx)
	require.NoError(t, err)
	require.Equal(t, "Staff Engineer", got.Title)

	settings, err := super.UpsertSettings(ctx, foliosdk.SettingRequest{
		SiteName:   "janedoe.dev",
		SocialURLs: map[string]string{"github": "https://github.com/janedoe"},
	})
	require.NoError(t, err)

	gotSettings, err := srv.Client.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, settings.ID, gotSettings.ID)
	require.Equal(t, "https://github.com/janedoe", gotSettings.SocialURLs["github"])
}

func TestExperienceTimeline(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	past := time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)
	pastEnd := time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC)
	_, err := super.CreateExperience(ctx, foliosdk.ExperienceRequest{
		JobTitle:  "Software Engineer",
		Company:   "Acme",
		StartDate: past,
		EndDate:   &pastEnd,
	})
	require.NoError(t, err)

	_, err = super.CreateExperience(ctx, foliosdk.ExperienceRequest{
		JobTitle:  "Senior Engineer",
		Company:   "Globex",
		StartDate: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Current positions sort ahead of finished ones.
	timeline, err := srv.Client.ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	require.Equal(t, "Senior Engineer", timeline[0].JobTitle)
	require.Nil(t, timeline[0].EndDate)
}
