package config

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		// restores the previous value after the test
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestNewConfigFromEnvDefaults(t *testing.T) {
	unsetEnv(t, "GITHUB_API_URL", "LOG_LEVEL", "LOG_FORMAT")
	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, "https://api.github.com/", cfg.APIURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	require.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestCreateGitHubClient(t *testing.T) {
	testCases := []struct {
		apiURL   string
		expected string
	}{
		{apiURL: "https://api.github.com/", expected: "https://api.github.com/"},
		{apiURL: "https://api.github.com", expected: "https://api.github.com/"},
		{apiURL: "https://ghe.example.com/api/v3", expected: "https://ghe.example.com/api/v3/"},
		{apiURL: "http://127.0.0.1:8080", expected: "http://127.0.0.1:8080/"},
	}

	for _, testCase := range testCases {
		ghClient, err := (&Config{APIURL: testCase.apiURL}).CreateGitHubClient()
		require.NoError(t, err)
		require.Equal(t, testCase.expected, ghClient.BaseURL.String())
	}

	_, err := (&Config{APIURL: "api.github.com"}).CreateGitHubClient()
	require.ErrorContains(t, err, "scheme and host are required")
	_, err = (&Config{APIURL: "://broken"}).CreateGitHubClient()
	require.ErrorContains(t, err, "invalid API URL")
}

func TestConfigureLogger(t *testing.T) {
	log := logrus.New()
	log.Out = io.Discard

	require.NoError(t, (&Config{LogLevel: "warn", LogFormat: "json"}).ConfigureLogger(log))
	require.Equal(t, logrus.WarnLevel, log.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	require.NoError(t, (&Config{LogLevel: "debug", LogFormat: "text"}).ConfigureLogger(log))
	require.Equal(t, logrus.DebugLevel, log.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	require.Error(t, (&Config{LogLevel: "loud", LogFormat: "text"}).ConfigureLogger(log))
	require.ErrorContains(t, (&Config{LogLevel: "info", LogFormat: "xml"}).ConfigureLogger(log), "unknown log format")
}
