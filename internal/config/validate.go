package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if c.Auth.BootstrapUsername != "" && len(c.Auth.BootstrapPassword) < 8 {
		return fmt.Errorf("auth.bootstrap_password must be at least 8 characters")
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Activity.QueueSize <= 0 {
		return fmt.Errorf("activity.queue_size must be > 0 (got %d)", c.Activity.QueueSize)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Driver) {
	case "memory":
	case "r2":
		if s.Bucket == "" || s.AccessKeyID == "" || s.SecretAccessKey == "" {
			return fmt.Errorf("bucket, access_key_id and secret_access_key are required for the r2 driver")
		}
		if s.ResolvedEndpoint() == "" {
			return fmt.Errorf("endpoint or account_id is required for the r2 driver")
		}
		if s.PublicBaseURL == "" {
			return fmt.Errorf("public_base_url is required for the r2 driver")
		}
	default:
		return fmt.Errorf("unknown driver %q (want r2 or memory)", s.Driver)
	}

	if s.PublicBaseURL != "" {
		u, err := url.Parse(s.PublicBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("public_base_url %q is not an absolute URL", s.PublicBaseURL)
		}
	}

	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}

	return nil
}
