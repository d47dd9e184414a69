package config

import "strings"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	CircloBaseURL string `env:"CIRCLO_BASE_URL"`
	// The Circlo credential can be supplied under either name; CircloToken
	// wins when both are set.
	CircloToken    string `env:"CIRCLO_TOKEN"`
	CircloAPIToken string `env:"CIRCLO_API_TOKEN"`

	// WebhookSecret enables HMAC verification of inbound webhook calls when
	// non-empty. Circlo does not sign calls today, so it is off by default.
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	AgentName      string `env:"AGENT_NAME"`
	AgentAvatarURL string `env:"AGENT_AVATAR_URL"`
}

const defaultCircloBaseURL = "https://api.getcirclo.com"

// BaseURL returns the Circlo API base URL, defaulting to the public endpoint.
func (s *Settings) BaseURL() string {
	if s.CircloBaseURL == "" {
		return defaultCircloBaseURL
	}
	return strings.TrimRight(s.CircloBaseURL, "/")
}

// ResolveToken returns the Circlo bearer credential, preferring CIRCLO_TOKEN
// over CIRCLO_API_TOKEN. Operators sometimes paste the full header value, so
// a leading "Bearer " prefix is stripped.
func (s *Settings) ResolveToken() string {
	token := s.CircloToken
	if token == "" {
		token = s.CircloAPIToken
	}
	token = strings.TrimSpace(token)
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
