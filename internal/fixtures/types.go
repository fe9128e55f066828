package fixtures

// SystemProbeConfig is the document written by the system-probe generator.
// The exported shape lets tests and consumers decode a generated file back
// with yaml.Decoder; the generators themselves never read it.
type SystemProbeConfig struct {
	SystemProbe     SystemProbeSettings     `yaml:"system_probe_config"`
	Network         NetworkSettings         `yaml:"network_config"`
	RuntimeSecurity RuntimeSecuritySettings `yaml:"runtime_security_config"`
}

type SystemProbeSettings struct {
	LogLevel string `yaml:"log_level"`
}

type NetworkSettings struct {
	Enabled bool `yaml:"enabled"`
}

type RuntimeSecuritySettings struct {
	LogPatterns []string `yaml:"log_patterns"`
}

// AgentConfig is the document written by the agent generator.
type AgentConfig struct {
	LogLevel string   `yaml:"log_level"`
	Hostname string   `yaml:"hostname"`
	Tags     []string `yaml:"tags"`
}
