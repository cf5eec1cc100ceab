package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pixel_match", cfg.AppName)
	assert.Equal(t, 3, cfg.Engine.Attempts)
	assert.Equal(t, 5*time.Second, cfg.Engine.PollInterval)
	assert.Equal(t, "campaignmanagement", cfg.Jira.TeamAlias)
	assert.Equal(t, "customfield_12325", cfg.Jira.LeadAnalystField)
	assert.Equal(t, "0 5 1,15 * *", cfg.Schedule.Spec)
	assert.False(t, cfg.Psql.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORKERS", "4")
	t.Setenv("ENGINE_POLL_INTERVAL", "250ms")
	t.Setenv("JIRA_ANALYST_ALIASES", "Debra Eskra:deb.eskra,Jane Roe:jroe")
	t.Setenv("MAIL_TO", "cm@example.com,ops@example.com")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.PollInterval)
	assert.Equal(t, map[string]string{"Debra Eskra": "deb.eskra", "Jane Roe": "jroe"}, cfg.Jira.AnalystAliases)
	assert.Equal(t, []string{"cm@example.com", "ops@example.com"}, cfg.Mail.To)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCOVERY_URL")
	assert.Contains(t, err.Error(), "MAIL_TO")

	cfg.Discovery.URL = "http://pixels.local/api"
	cfg.Jira.URL = "http://jira.local"
	cfg.Engine.Token = "secret"
	cfg.Mail.To = []string{"cm@example.com"}
	assert.NoError(t, cfg.Validate())

	cfg.Engine.Attempts = 0
	assert.ErrorContains(t, cfg.Validate(), "ENGINE_ATTEMPTS")
}
