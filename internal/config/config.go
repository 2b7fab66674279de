// Package config loads the small YAML document that toggles bundled checks
// on or off and sets each one's severity. It is deliberately not a
// rule-configuration DSL: there is no pattern or rule-body language here,
// only a per-check enable flag and severity, the same shape of concern the
// teacher's CLI flags address for the interpreter rather than a config file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Severity orders how seriously an issue should be treated. The zero value,
// SeverityInfo, is the least severe. A check with no configured severity is
// treated as SeverityMajor (see SeverityFor).
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityMinor
	SeverityMajor
	SeverityCritical
)

var severityNames = map[string]Severity{
	"info":     SeverityInfo,
	"minor":    SeverityMinor,
	"major":    SeverityMajor,
	"critical": SeverityCritical,
}

func (s Severity) String() string {
	for name, v := range severityNames {
		if v == s {
			return name
		}
	}
	return "info"
}

// ParseSeverity looks up a severity by its YAML name (case-sensitive, same
// set UnmarshalYAML accepts), for CLI flags that take the same vocabulary
// as the config document.
func ParseSeverity(name string) (Severity, bool) {
	v, ok := severityNames[name]
	return v, ok
}

func (s *Severity) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, ok := severityNames[raw]
	if !ok {
		return fmt.Errorf("config: unknown severity %q", raw)
	}
	*s = v
	return nil
}

// CheckConfig is the per-check override a document may supply. Enabled
// defaults to true when a check isn't mentioned at all; Severity defaults
// to SeverityMajor. Both are pointers so an absent key is distinguishable
// from an explicit zero value (e.g. "severity: info").
type CheckConfig struct {
	Enabled  *bool     `yaml:"enabled"`
	Severity *Severity `yaml:"severity"`
}

// Config is the root of a javalint.yml document: one entry per rule key.
type Config struct {
	Checks map[string]CheckConfig `yaml:"checks"`
}

// Load reads path and parses it as a Config. A missing file is not an
// error: it yields the default configuration (every check enabled, major
// severity), mirroring the teacher's config-loading fallback.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Checks == nil {
		cfg.Checks = map[string]CheckConfig{}
	}
	return &cfg, nil
}

// Default returns the configuration used when no document is supplied.
func Default() *Config {
	return &Config{Checks: map[string]CheckConfig{}}
}

// Enabled reports whether ruleKey should run. Unmentioned rules are
// enabled by default.
func (c *Config) Enabled(ruleKey string) bool {
	cc, ok := c.Checks[ruleKey]
	if !ok || cc.Enabled == nil {
		return true
	}
	return *cc.Enabled
}

// SeverityFor returns the configured severity for ruleKey, or SeverityMajor
// if the rule is unmentioned or mentioned without an explicit severity.
func (c *Config) SeverityFor(ruleKey string) Severity {
	cc, ok := c.Checks[ruleKey]
	if !ok || cc.Severity == nil {
		return SeverityMajor
	}
	return *cc.Severity
}
