package fixtures

const defaultLogLevel = "INFO"

// SystemProbeParams parameterizes the system-probe config document.
// The zero value yields the documented defaults.
type SystemProbeParams struct {
	NetworkEnabled bool
	LogLevel       string
	LogPatterns    []string
}

// AgentParams parameterizes the agent config document.
// The zero value yields the documented defaults.
type AgentParams struct {
	Hostname string
	LogLevel string
	Tags     []string
}

func applySystemProbeDefaults(p SystemProbeParams) SystemProbeParams {
	if p.LogLevel == "" {
		p.LogLevel = defaultLogLevel
	}
	if p.LogPatterns == nil {
		// A fresh empty slice per call, so the document carries an empty
		// list rather than null and no caller shares the default value.
		p.LogPatterns = []string{}
	}
	return p
}

func applyAgentDefaults(p AgentParams) AgentParams {
	if p.LogLevel == "" {
		p.LogLevel = defaultLogLevel
	}
	if p.Hostname == "" {
		p.Hostname = "myhost"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
