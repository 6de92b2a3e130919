package config

import "time"

// RateLimitConfig throttles the layout edit endpoints.  Each key gets a
// bucket of Burst tokens; one token comes back every Every.  Keys expire
// after TTL of inactivity, which is never shorter than the time a drained
// bucket needs to refill.
type RateLimitConfig struct {
    Enabled     bool
    Burst       int
    Every       time.Duration
    TTL         time.Duration
    KeyStrategy string // user, ip or user_route
    Prefix      string
    Debug       bool
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled:     envBool("RATE_LIMIT_ENABLED", true),
        Burst:       envInt("RATE_LIMIT_BURST", 60),
        Every:       envDur("RATE_LIMIT_REFILL_EVERY", time.Second),
        TTL:         envDur("RATE_LIMIT_TTL", 10*time.Minute),
        KeyStrategy: envStr("RATE_LIMIT_KEY_STRATEGY", "user_route"),
        Prefix:      envStr("RATE_LIMIT_PREFIX", "layout-rl"),
        Debug:       envBool("RATE_LIMIT_DEBUG", false),
    }
    if cfg.Burst < 1 {
        cfg.Burst = 1
    }
    if cfg.Every <= 0 {
        cfg.Every = time.Second
    }
    if full := time.Duration(cfg.Burst) * cfg.Every; cfg.TTL < full {
        cfg.TTL = full
    }
    return cfg
}
