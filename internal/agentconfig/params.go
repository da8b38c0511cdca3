package agentconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"go.yaml.in/yaml/v3"
)

// Params maps parameter names to their specs while remembering declaration
// order. Names are unique. The zero value is an empty set ready to use.
type Params struct {
	names []string
	specs map[string]ParamSpec
}

// Set adds a parameter. It fails if name is empty or already declared.
func (p *Params) Set(name string, spec ParamSpec) error {
	if name == "" {
		return ErrEmptyParamName
	}
	if _, ok := p.specs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateParam, name)
	}
	if p.specs == nil {
		p.specs = make(map[string]ParamSpec)
	}
	p.names = append(p.names, name)
	p.specs[name] = spec
	return nil
}

// Get returns the spec for name.
func (p Params) Get(name string) (ParamSpec, bool) {
	spec, ok := p.specs[name]
	return spec, ok
}

// Len returns the number of declared parameters.
func (p Params) Len() int { return len(p.names) }

// Names returns parameter names in declaration order.
func (p Params) Names() []string {
	return append([]string(nil), p.names...)
}

// All iterates parameters in declaration order.
func (p Params) All() iter.Seq2[string, ParamSpec] {
	return func(yield func(string, ParamSpec) bool) {
		for _, name := range p.names {
			if !yield(name, p.specs[name]) {
				return
			}
		}
	}
}

// Required returns the names of required parameters in declaration order.
func (p Params) Required() []string { return p.filter(true) }

// Optional returns the names of optional parameters in declaration order.
func (p Params) Optional() []string { return p.filter(false) }

func (p Params) filter(required bool) []string {
	var out []string
	for name, spec := range p.All() {
		if spec.Required == required {
			out = append(out, name)
		}
	}
	return out
}

func (p Params) clone() Params {
	if p.specs == nil {
		return Params{}
	}
	out := Params{
		names: append([]string(nil), p.names...),
		specs: make(map[string]ParamSpec, len(p.specs)),
	}
	for k, v := range p.specs {
		out.specs[k] = v
	}
	return out
}

// MarshalYAML emits params as a mapping in declaration order.
func (p Params) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, spec := range p.All() {
		var v yaml.Node
		if err := v.Encode(spec); err != nil {
			return nil, fmt.Errorf("encoding param %q: %w", name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		node.Content = append(node.Content, key, &v)
	}
	return node, nil
}

// paramSpecKeys are the only keys allowed inside a param mapping.
var paramSpecKeys = map[string]bool{"type": true, "description": true, "required": true}

// UnmarshalYAML decodes a params mapping, keeping order and rejecting
// duplicate names and unknown spec keys.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping", value.Line)
	}

	var out Params
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: param name must be a scalar", key.Line)
		}
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: param %q must be a mapping", val.Line, key.Value)
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			if k := val.Content[j].Value; !paramSpecKeys[k] {
				return fmt.Errorf("line %d: param %q has unknown field %q", val.Content[j].Line, key.Value, k)
			}
		}

		var spec ParamSpec
		if err := val.Decode(&spec); err != nil {
			return fmt.Errorf("param %q: %w", key.Value, err)
		}
		if err := out.Set(key.Value, spec); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
	}

	*p = out
	return nil
}

// MarshalJSON emits params as an object in declaration order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, spec := range p.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(spec)
		if err != nil {
			return nil, fmt.Errorf("encoding param %q: %w", name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a params object, keeping order and rejecting
// duplicate names and unknown spec keys.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = Params{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("params must be an object")
	}

	var out Params
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name := tok.(string) // object keys are always strings
		var spec ParamSpec
		if err := dec.Decode(&spec); err != nil {
			return fmt.Errorf("param %q: %w", name, err)
		}
		if err := out.Set(name, spec); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}
