// Package fixtures materializes temporary YAML configuration files for the
// agent components exercised by the e2e suite. Each generator call writes one
// uniquely named file and returns its path; cleanup is left to the caller or
// the OS temp reaper.
package fixtures

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Manny27nyc/datadog-agent/internal/logger"
)

// Temp file patterns. The prefixes identify the two generators' output in a
// shared temp directory.
const (
	systemProbePattern = "e2e-system-probe-*.yaml"
	agentPattern       = "e2e-datadog-agent-*.yaml"
)

// ConfigGen writes config fixtures into a target directory.
type ConfigGen struct {
	dir string
	log zerolog.Logger
}

// Option configures a ConfigGen.
type Option func(*ConfigGen)

// WithDir places generated files in dir instead of the OS temp directory.
func WithDir(dir string) Option {
	return func(g *ConfigGen) { g.dir = dir }
}

// WithLogger replaces the generator's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *ConfigGen) { g.log = log }
}

// NewConfigGen returns a generator writing to the OS temp directory unless
// WithDir overrides it.
func NewConfigGen(opts ...Option) *ConfigGen {
	g := &ConfigGen{log: logger.Init("info")}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SystemProbeConfig writes a system-probe config document built from p and
// returns the absolute path of the new file. Zero-valued fields of p take the
// documented defaults.
func (g *ConfigGen) SystemProbeConfig(p SystemProbeParams) (string, error) {
	p = applySystemProbeDefaults(p)
	doc := SystemProbeConfig{
		SystemProbe:     SystemProbeSettings{LogLevel: p.LogLevel},
		Network:         NetworkSettings{Enabled: p.NetworkEnabled},
		RuntimeSecurity: RuntimeSecuritySettings{LogPatterns: p.LogPatterns},
	}
	return g.write(systemProbePattern, "system-probe", doc)
}

// AgentConfig writes an agent config document built from p and returns the
// absolute path of the new file.
func (g *ConfigGen) AgentConfig(p AgentParams) (string, error) {
	p = applyAgentDefaults(p)
	doc := AgentConfig{
		LogLevel: p.LogLevel,
		Hostname: p.Hostname,
		Tags:     p.Tags,
	}
	return g.write(agentPattern, "agent", doc)
}

func (g *ConfigGen) write(pattern, kind string, doc any) (string, error) {
	f, err := os.CreateTemp(g.dir, pattern)
	if err != nil {
		return "", err
	}

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	path, err := filepath.Abs(f.Name())
	if err != nil {
		return "", err
	}
	g.log.Debug().Str("kind", kind).Str("path", path).Msg("wrote config fixture")
	return path, nil
}

// GenSystemProbeConfig writes a system-probe config into the OS temp
// directory using a default generator.
func GenSystemProbeConfig(p SystemProbeParams) (string, error) {
	return NewConfigGen().SystemProbeConfig(p)
}

// GenAgentConfig writes an agent config into the OS temp directory using a
// default generator.
func GenAgentConfig(p AgentParams) (string, error) {
	return NewConfigGen().AgentConfig(p)
}
