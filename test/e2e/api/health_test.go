package api_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthProbes(t *testing.T) {
	srv := setupServer(t)
	ctx := t.Context()

	live, err := srv.Client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := srv.Client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotEmpty(t, ready.Uptime)
}
