package api_test

import (
	"testing"

	"github.com/foliohq/folio/pkg/foliosdk"
	"github.com/stretchr/testify/require"
)

func TestContactFormFlow(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	// Visitors submit anonymously.
	msg, err := srv.Client.SubmitContact(ctx, foliosdk.ContactRequest{
		Name:    "  Sam Visitor ",
		Email:   "Sam@Example.com",
		Message: "Interested in contract work.",
	})
	require.NoError(t, err)
	require.Equal(t, "Sam Visitor", msg.Name)
	require.Equal(t, "sam@example.com", msg.Email)

	_, err = srv.Client.SubmitContact(ctx, foliosdk.ContactRequest{Name: "No Message", Email: "x@example.com"})
	var apiErr *foliosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// Reading the inbox takes view_analytics.
	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")
	inbox, err := super.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.Equal(t, "Interested in contract work.", inbox[0].Message)

	editor := inviteAs(t, srv, super, "editor", "subject-editor", "editor@example.com")
	_, err = editor.ListContactMessages(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.StatusCode)
}

func TestAnalyticsSummary(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	super := bootstrapSuperadmin(t, srv, "subject-super", "super@example.com")

	_, err := super.CreateProject(ctx, foliosdk.ProjectRequest{Title: "One"})
	require.NoError(t, err)
	_, err = super.CreateProject(ctx, foliosdk.ProjectRequest{Title: "Two"})
	require.NoError(t, err)
	_, err = super.CreateSkill(ctx, foliosdk.SkillRequest{Name: "Go", Proficiency: 80})
	require.NoError(t, err)
	_, err = srv.Client.SubmitContact(ctx, foliosdk.ContactRequest{
		Name: "Sam", Email: "sam@example.com", Message: "Hello",
	})
	require.NoError(t, err)

	summary, err := super.GetAnalytics(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, summary.TotalProjects)
	require.Equal(t, 1, summary.TotalSkills)
	require.Equal(t, 1, summary.TotalContacts)
	require.Equal(t, 2, summary.RecentProjects)
	require.Equal(t, 1, summary.RecentContacts)
}
