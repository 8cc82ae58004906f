// internal/common/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: babybook-test
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "babybook-test", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Notifications.MonthBirthdayWindowDays)
	assert.Equal(t, 7, cfg.Notifications.VaccineOverdueGraceDays)
	assert.Equal(t, 24, cfg.Notifications.SleepReminderHours)
	assert.Equal(t, 10, cfg.Notifications.GrowthReminderDays)
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9090"
database:
  redis:
    address: "redis-main:6379"
    db: 2
notifications:
  month_birthday_window_days: 5
  sleep_reminder_hours: 12
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "redis-main:6379", cfg.Database.Redis.Address)
	assert.Equal(t, 2, cfg.Database.Redis.DB)
	assert.Equal(t, 5, cfg.Notifications.MonthBirthdayWindowDays)
	assert.Equal(t, 12, cfg.Notifications.SleepReminderHours)
}

func TestLoadFromFileRejectsBadRedisAddress(t *testing.T) {
	path := writeConfig(t, `
database:
  redis:
    address: "not a dial string"
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidateNotificationThresholds(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.NoError(t, cfg.Validate())

	cfg.Notifications.SleepReminderHours = -1
	assert.Error(t, cfg.Validate())
}
