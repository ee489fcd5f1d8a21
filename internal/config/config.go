package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v59/github"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	APIURL    string `envconfig:"GITHUB_API_URL" default:"https://api.github.com/"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) getAPIBaseURL() (*url.URL, error) {
	baseURL, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", c.APIURL)
	}
	// go-github resolves endpoints relative to the base URL
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	return baseURL, nil
}

// CreateGitHubClient returns an unauthenticated client for the configured API URL.
func (c *Config) CreateGitHubClient() (*github.Client, error) {
	baseURL, err := c.getAPIBaseURL()
	if err != nil {
		return nil, err
	}
	ghClient := github.NewClient(nil)
	ghClient.BaseURL = baseURL
	return ghClient, nil
}

func (c *Config) ConfigureLogger(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	return nil
}
