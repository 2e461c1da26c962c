package config

import (
	"fmt"
	"slices"
	"strings"
)

// Transition policy names accepted in council.transition_policy.
const (
	PolicyPermissive = "permissive"
	PolicySequential = "sequential"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Council.validate(); err != nil {
		return fmt.Errorf("council: %w", err)
	}

	if c.RateLimit.PublicPerMinute <= 0 || c.RateLimit.CouncilorPerMinute <= 0 {
		return fmt.Errorf("rate_limit: per-minute budgets must be > 0")
	}

	return nil
}

func (c *CouncilConfig) validate() error {
	if c.DefaultQuorum <= 0 {
		return fmt.Errorf("default_quorum must be > 0 (got %d)", c.DefaultQuorum)
	}

	c.TransitionPolicy = strings.ToLower(strings.TrimSpace(c.TransitionPolicy))
	if !slices.Contains([]string{PolicyPermissive, PolicySequential}, c.TransitionPolicy) {
		return fmt.Errorf("transition_policy must be %q or %q (got %q)", PolicyPermissive, PolicySequential, c.TransitionPolicy)
	}

	if c.MaxSpeechMinutes <= 0 {
		return fmt.Errorf("max_speech_minutes must be > 0 (got %d)", c.MaxSpeechMinutes)
	}
	if c.MaxTimerSeconds <= 0 {
		return fmt.Errorf("max_timer_seconds must be > 0 (got %d)", c.MaxTimerSeconds)
	}
	if c.SessionListPageLimit <= 0 {
		return fmt.Errorf("session_list_page_limit must be > 0 (got %d)", c.SessionListPageLimit)
	}

	return nil
}
