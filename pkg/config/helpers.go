package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/o3data/pkg/errors"
)

var durationType = reflect.TypeOf(time.Duration(0))

// SetValue sets a configuration value by key
// Supported keys:
//   - data_root: string - Directory holding download/ and extract/
//   - http_timeout: duration - Per-download timeout (e.g. 90s, 5m)
//   - user_agent: string - User-Agent header for HTTP mirrors
//   - max_concurrent: int - Datasets fetched at once by fetch --all
//   - output_format: string - Log format (text, json)
//   - color_output: bool - Whether to use colored output
//   - log_level: string - Logging level (debug, info, warn, error)
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "data_root":
		c.Settings.DataRoot = value
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %s: %w", key, value, errors.ErrConfigValidation)
		}
		c.Settings.HTTPTimeout = d
	case "user_agent":
		c.Settings.UserAgent = value
	case "max_concurrent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %s: %w", key, value, errors.ErrConfigValidation)
		}
		c.Settings.MaxConcurrent = n
	case "output_format":
		c.Settings.OutputFormat = value
	case "color_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s: %w", key, value, errors.ErrConfigValidation)
		}
		c.Settings.ColorOutput = boolVal
	case "log_level":
		c.Settings.LogLevel = value
	default:
		return fmt.Errorf("unknown configuration key: %s: %w", key, errors.ErrConfigValidation)
	}
	return validateSettings(c.Settings)
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "data_root":
		return c.Settings.DataRoot, nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "user_agent":
		return c.Settings.UserAgent, nil
	case "max_concurrent":
		return strconv.Itoa(c.Settings.MaxConcurrent), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "color_output":
		return strconv.FormatBool(c.Settings.ColorOutput), nil
	case "log_level":
		return c.Settings.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s: %w", key, errors.ErrConfigValidation)
	}
}

// ToMap flattens the settings section keyed by YAML name.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := map[string]string{"version": c.Version}

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string
		switch {
		case fieldValue.Type() == durationType:
			strValue = time.Duration(fieldValue.Int()).String()
		case fieldValue.Kind() == reflect.Bool:
			strValue = strconv.FormatBool(fieldValue.Bool())
		case fieldValue.Kind() == reflect.Int:
			strValue = strconv.FormatInt(fieldValue.Int(), 10)
		case fieldValue.Kind() == reflect.String:
			strValue = fieldValue.String()
		default:
			strValue = fmt.Sprintf("%v", fieldValue.Interface())
		}
		result[yamlKey] = strValue
	}

	return result
}
