package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("loud"))
}

func TestSetup_FileOutput(t *testing.T) {
	out := logrus.StandardLogger().Out
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
	})

	logFile := filepath.Join(t.TempDir(), "fittrack")
	Setup(LoggerSetupParams{
		LogFileName: logFile,
		LogLevel:    "info",
	})
	logrus.Info("steps logged")
	logrus.Debug("not written")

	data, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "steps logged")
	assert.NotContains(t, string(data), "not written")
}

func TestSentryHook(t *testing.T) {
	var events []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: sentry.NewHTTPSyncTransport(),
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			return nil
		},
	})
	require.NoError(t, err)
	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	hook.hub = sentry.NewHub(client, sentry.NewScope())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	logger.WithField("kind", "steps_logs").Error("store unavailable")
	logger.Warn("ignored")

	require.Len(t, events, 1)
	assert.Equal(t, "store unavailable", events[0].Message)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, "steps_logs", events[0].Extra["kind"])
}
