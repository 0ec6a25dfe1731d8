package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/keylock"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/reminders"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/store/memory"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, s *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })
	return clientSession
}

func TestServer_Tools(t *testing.T) {
	ctx := context.Background()
	metricsManager := metrics.NewTestManager()
	accessor := store.NewAccessor(memory.New(), keylock.NewLocal(), metricsManager)
	// Monday
	tr := tracker.NewService(accessor, program.DefaultCatalog()).
		WithClock(func() time.Time { return time.Date(2026, 10, 12, 9, 0, 0, 0, time.Local) })
	st := stats.NewService(tr, 1024*1024, 7, metricsManager)
	defer st.Close()

	_, err := tr.CompleteOnboarding(ctx, tracker.SettingsPatch{})
	require.NoError(t, err)

	session := connect(t, NewServer(tr, st, reminders.NewService(tr)))

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"get_settings", "get_plan", "get_week_plan", "get_workout",
		"get_streak", "get_adherence", "get_trends", "get_reminders",
		"get_exercise", "get_nutrition_target",
	}, names)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_plan",
		Arguments: map[string]any{"date": "2026-10-14"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, `"id": "normal-legs"`)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "get_streak", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.JSONEq(t, `{"current":0,"longest":0}`, res.Content[0].(*mcp.TextContent).Text)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_exercise",
		Arguments: map[string]any{"id": "chest-press-machine"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text = res.Content[0].(*mcp.TextContent).Text
	assert.Contains(t, text, `"name": "Incline Chest Press Machine"`)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "get_nutrition_target", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, `"mode": "normal"`)
}
