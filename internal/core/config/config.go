package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"shipment-tracker/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// AdminPort serves the operator routes (notice writes). 0 disables them.
	AdminPort int `mapstructure:"ADMIN_PORT"`
	// AdminHost is the interface the operator server binds to.
	AdminHost string `mapstructure:"ADMIN_HOST" default:"127.0.0.1"`
	// TracingEnabled exports spans of outbound tracking requests to stdout.
	TracingEnabled bool `mapstructure:"TRACING_ENABLED" default:"false"`

	// Tracking holds the tracking service and page configuration.
	Tracking TrackingConfig `mapstructure:",squash"`

	// Redis holds the notice store configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy used for tracking requests.
	Proxy proxy.Settings `mapstructure:",squash"`
}

// TrackingConfig holds the remote tracking endpoint and page defaults.
type TrackingConfig struct {
	// BaseURL is the tracking service root; shipments live under /shipments/track/{number}.
	BaseURL string `mapstructure:"BOSTA_URL" default:"https://tracking.bosta.co" required:"true"`
	// FetchTimeoutSeconds bounds a single shipment lookup.
	FetchTimeoutSeconds int `mapstructure:"FETCH_TIMEOUT" default:"10"`
	// DefaultLanguage is used when neither the query nor Accept-Language select one.
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE" default:"ar"`
	// DisplayTimezone is the IANA zone used for "last update" and promised dates.
	DisplayTimezone string `mapstructure:"DISPLAY_TIMEZONE" default:"Africa/Cairo"`
	// HelpURL is the target of the "report a problem" button.
	HelpURL string `mapstructure:"HELP_URL" default:"https://bosta.co/en/contact-us"`
}

// RedisConfig holds the Redis connection used for site notices.
type RedisConfig struct {
	// URL is a redis:// URL. Empty disables notices.
	URL string `mapstructure:"REDIS_URL"`
}

// FetchTimeout returns the lookup timeout as a duration.
func (c TrackingConfig) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Location resolves DisplayTimezone. An empty zone is UTC; an unknown one
// returns UTC together with the lookup error.
func (c TrackingConfig) Location() (*time.Location, error) {
	if c.DisplayTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
