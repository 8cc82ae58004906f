// internal/common/config/config.go
package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	HTTP          HTTPConfig         `mapstructure:"http"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// HTTPConfig holds the API server settings.
type HTTPConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NotificationConfig holds the thresholds the notification engine evaluates.
// Defaults mirror the product rules; they are tunable per environment.
type NotificationConfig struct {
	MonthBirthdayWindowDays int `mapstructure:"month_birthday_window_days"`
	VaccineOverdueGraceDays int `mapstructure:"vaccine_overdue_grace_days"`
	SleepReminderHours      int `mapstructure:"sleep_reminder_hours"`
	GrowthReminderDays      int `mapstructure:"growth_reminder_days"`
}

func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Redis),
	)
}

func (c HTTPConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required),
	)
}

func (c RedisConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, is.DialString),
		validation.Field(&c.DB, validation.Min(0)),
	)
}

func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("json", "console")),
	)
}

func (c NotificationConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MonthBirthdayWindowDays, validation.Min(1)),
		validation.Field(&c.VaccineOverdueGraceDays, validation.Min(0)),
		validation.Field(&c.SleepReminderHours, validation.Min(1)),
		validation.Field(&c.GrowthReminderDays, validation.Min(1)),
	)
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.HTTP),
		validation.Field(&c.Database),
		validation.Field(&c.Logging),
		validation.Field(&c.Notifications),
	)
}
