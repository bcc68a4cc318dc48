package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/glorpus-work/o3data/pkg/auth"
	"github.com/glorpus-work/o3data/pkg/errors"
)

// AuthConfig holds the credentials of one mirror host. Secret values may
// reference environment variables as $VAR or ${VAR}.
type AuthConfig struct {
	Type     string            `yaml:"type"`
	Username string            `yaml:"username,omitempty"`
	Password string            `yaml:"password,omitempty"`
	Token    string            `yaml:"token,omitempty"`
	Headers  map[string]string `yaml:"headers,omitempty"`
}

func validateAuth(hosts map[string]*AuthConfig) error {
	for host, a := range hosts {
		if host == "" || a == nil {
			return fmt.Errorf("auth[%s]: empty entry: %w", host, errors.ErrConfigValidation)
		}
		switch auth.Type(a.Type) {
		case auth.BasicAuthType:
			if a.Username == "" {
				return fmt.Errorf("auth[%s]: basic auth needs a username: %w", host, errors.ErrConfigValidation)
			}
		case auth.BearerAuthType:
			if a.Token == "" {
				return fmt.Errorf("auth[%s]: bearer auth needs a token: %w", host, errors.ErrConfigValidation)
			}
		case auth.HeaderAuthType:
			if len(a.Headers) == 0 {
				return fmt.Errorf("auth[%s]: header auth needs headers: %w", host, errors.ErrConfigValidation)
			}
		default:
			return fmt.Errorf("auth[%s]: unknown type %q: %w", host, a.Type, errors.ErrConfigValidation)
		}
	}
	return nil
}

// Authenticators builds the per-host credentials with environment
// references expanded.
func (c *Config) Authenticators() auth.Hosts {
	if len(c.Auth) == 0 {
		return nil
	}
	hosts := make(auth.Hosts, len(c.Auth))
	for host, a := range c.Auth {
		key := strings.ToLower(host)
		switch auth.Type(a.Type) {
		case auth.BasicAuthType:
			hosts[key] = auth.BasicAuth{Username: os.ExpandEnv(a.Username), Password: os.ExpandEnv(a.Password)}
		case auth.BearerAuthType:
			hosts[key] = auth.BearerAuth{Token: os.ExpandEnv(a.Token)}
		case auth.HeaderAuthType:
			headers := make(map[string]string, len(a.Headers))
			for k, v := range a.Headers {
				headers[k] = os.ExpandEnv(v)
			}
			hosts[key] = auth.HeaderAuth{Headers: headers}
		}
	}
	return hosts
}
