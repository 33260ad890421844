// Package attack drives load against a running shortlink server with vegeta.
package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	TypeCreate    = "create"
	TypeRedirect  = "redirect"
	TypeAnalytics = "analytics"
	TypeMixed     = "mixed"
)

var ErrNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	BaseURL            string
	Codes              []string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

// NeedsSeed reports whether attackType reads existing codes.
func NeedsSeed(attackType string) bool {
	return attackType != TypeCreate
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if NeedsSeed(cfg.Type) && len(cfg.Codes) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Type, ErrNoCodes)
	}

	switch cfg.Type {
	case TypeCreate:
		return CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case TypeRedirect:
		return RedirectTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case TypeAnalytics:
		return AnalyticsTargeter(cfg.BaseURL, cfg.Codes, cfg.RateLimitBypass), nil
	case TypeMixed:
		return MixedTargeter(cfg.BaseURL, cfg.Codes, cfg.CreateRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

// Run attacks for cfg.Duration and writes a text report to out.
func Run(cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		// Redirects are the thing being measured, not followed.
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec // self-signed bench targets
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
