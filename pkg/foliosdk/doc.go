/*
Package foliosdk provides a client SDK for the portfolio service API.

# Overview

The SDK wraps both the public content surface and the bearer-authenticated
admin surface of the service. Authentication itself happens at an external
identity provider; the SDK never exchanges credentials, it just attaches an
access token you already hold.

Create a Client for public endpoints:

	client := foliosdk.NewClient("https://api.example.com")

	projects, err := client.ListProjects(ctx)
	ok, err := client.GetLiveness(ctx)

	// Redeem an invitation with a provider-issued token
	account, err := client.WithToken(token).AcceptInvitation(ctx, foliosdk.AcceptInvitationRequest{
		Code: "AB12CD34",
	})

Admin operations need a token:

	admin := client.WithToken(accessToken)

	me, err := admin.GetMe(ctx)
	inv, err := admin.IssueInvitation(ctx, foliosdk.IssueInvitationRequest{
		Email: "new.admin@example.com",
		Role:  "editor",
	})

# Error Handling

Failed requests return *APIError carrying the HTTP status code plus the
service's error code and description:

	if apiErr, ok := err.(*foliosdk.APIError); ok {
		fmt.Println(apiErr.StatusCode, apiErr.Code)
	}

# Thread Safety

A Client is safe for concurrent use. WithToken returns a shallow copy, so
one base client can serve many tokens at once.
*/
package foliosdk
