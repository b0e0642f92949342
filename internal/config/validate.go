package config

import (
	"fmt"
	"net/mail"
)

// MaxPageSize caps gadget.page_size.
const MaxPageSize = 100

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Gadget.PageSize < 1 || c.Gadget.PageSize > MaxPageSize {
		return fmt.Errorf("gadget.page_size must be between 1 and %d (got %d)", MaxPageSize, c.Gadget.PageSize)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 (got %s)", c.Redis.TTL)
	}

	if c.RateLimit.ContactPerMinute < 1 {
		return fmt.Errorf("rate_limit.contact_per_minute must be >= 1 (got %d)", c.RateLimit.ContactPerMinute)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Backend {
	case BackendPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for the postgres backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", d.Backend)
	}
	return nil
}

func (m *MailConfig) validate() error {
	switch m.Backend {
	case MailBackendSMTP:
		if m.Host == "" {
			return fmt.Errorf("host is required for the smtp backend")
		}
		if m.Port <= 0 || m.Port > 65535 {
			return fmt.Errorf("port out of range (got %d)", m.Port)
		}
		switch m.TLSPolicy {
		case "mandatory", "opportunistic", "none":
		default:
			return fmt.Errorf("unknown tls_policy %q", m.TLSPolicy)
		}
	case MailBackendLog:
	default:
		return fmt.Errorf("unknown backend %q", m.Backend)
	}

	if _, err := mail.ParseAddress(m.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if len(m.To) == 0 {
		return fmt.Errorf("at least one recipient is required in to")
	}
	for _, addr := range m.To {
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("to %q: %w", addr, err)
		}
	}

	return nil
}
