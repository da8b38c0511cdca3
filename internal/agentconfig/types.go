package agentconfig

// ParamType is the primitive type tag of a request parameter.
type ParamType string

// Parameter type tags understood by the host platform.
const (
	ParamString ParamType = "String"
	ParamNumber ParamType = "Number"
)

// ValidParamTypes contains all valid parameter type tags.
var ValidParamTypes = []ParamType{ParamString, ParamNumber}

// Valid reports whether t is one of ValidParamTypes.
func (t ParamType) Valid() bool {
	for _, v := range ValidParamTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParamSpec describes one request parameter.
type ParamSpec struct {
	Type        ParamType `yaml:"type" json:"type"`
	Description string    `yaml:"description" json:"description"`
	Required    bool      `yaml:"required" json:"required"`
}

// AgentConfig is the descriptor consumed by the host platform.
// Field order is the canonical key order used when encoding.
type AgentConfig struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	ReadmePath  string   `yaml:"readmePath" json:"readmePath"`
	Env         string   `yaml:"env" json:"env"`
	Params      Params   `yaml:"params" json:"params"`
	Port        int      `yaml:"port" json:"port"`
	Tags        []string `yaml:"tags" json:"tags"`
}

// Top-level descriptor keys.
const (
	KeyName        = "name"
	KeyDescription = "description"
	KeyReadmePath  = "readmePath"
	KeyEnv         = "env"
	KeyParams      = "params"
	KeyPort        = "port"
	KeyTags        = "tags"
)

// Keys returns the top-level descriptor keys in canonical order.
func Keys() []string {
	return []string{KeyName, KeyDescription, KeyReadmePath, KeyEnv, KeyParams, KeyPort, KeyTags}
}

// Clone returns a deep copy of c.
func (c AgentConfig) Clone() AgentConfig {
	out := c
	out.Params = c.Params.clone()
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// HasTag reports whether tag is declared, compared exactly.
func (c AgentConfig) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
