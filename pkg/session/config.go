package session

import "time"

// Config holds session configuration.
//
// Two TTLs serve two purposes: LoginTTL covers the initial session
// created at login, RenewTTL covers the short-lived replacement issued
// on every authenticated request. The split bounds the blast radius of
// a leaked cookie: an idle session decays quickly while active use
// keeps extending it.
type Config struct {
	// LoginTTL is the lifetime of the session created at login.
	LoginTTL time.Duration `env:"SESSION_LOGIN_TTL" envDefault:"30m"`

	// RenewTTL is the lifetime of each rotated session.
	RenewTTL time.Duration `env:"SESSION_RENEW_TTL" envDefault:"2m"`

	// SweepInterval for expired sessions (0 disables the sweeper).
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"0"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		LoginTTL:      30 * time.Minute,
		RenewTTL:      2 * time.Minute,
		SweepInterval: 0,
	}
}
