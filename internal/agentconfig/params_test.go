package agentconfig

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestParams_SetRejectsDuplicates(t *testing.T) {
	var p Params
	if err := p.Set("title", ParamSpec{Type: ParamString, Description: "t"}); err != nil {
		t.Fatalf("first Set error: %v", err)
	}
	err := p.Set("title", ParamSpec{Type: ParamNumber, Description: "again"})
	if !errors.Is(err, ErrDuplicateParam) {
		t.Fatalf("second Set error = %v, want ErrDuplicateParam", err)
	}
	spec, _ := p.Get("title")
	if spec.Type != ParamString {
		t.Errorf("duplicate Set overwrote spec: %+v", spec)
	}
}

func TestParams_SetRejectsEmptyName(t *testing.T) {
	var p Params
	if err := p.Set("", ParamSpec{}); !errors.Is(err, ErrEmptyParamName) {
		t.Errorf("Set(\"\") error = %v, want ErrEmptyParamName", err)
	}
}

func TestParams_RequiredOptional(t *testing.T) {
	p := Default().Params

	req := p.Required()
	want := []string{"title", "description", "requested_amount"}
	if strings.Join(req, ",") != strings.Join(want, ",") {
		t.Errorf("Required() = %v, want %v", req, want)
	}
	if got := len(p.Optional()); got != 7 {
		t.Errorf("len(Optional()) = %d, want 7", got)
	}
}

func TestParams_AllStopsEarly(t *testing.T) {
	n := 0
	for range Default().Params.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

func TestParams_YAMLPreservesOrder(t *testing.T) {
	src := `
zeta: {type: String, description: last letter, required: false}
alpha: {type: Number, description: first letter, required: true}
mid: {type: String, description: middle, required: false}
`
	var p Params
	if err := yaml.Unmarshal([]byte(src), &p); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got := strings.Join(p.Names(), ","); got != "zeta,alpha,mid" {
		t.Errorf("Names() = %s, want zeta,alpha,mid", got)
	}

	out, err := yaml.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(out)
	if !(strings.Index(s, "zeta:") < strings.Index(s, "alpha:") && strings.Index(s, "alpha:") < strings.Index(s, "mid:")) {
		t.Errorf("marshaled order wrong:\n%s", s)
	}
}

func TestParams_YAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not a mapping", "[a, b]"},
		{"spec not a mapping", "title: String"},
		{"unknown spec key", "title: {type: String, description: t, required: true, default: x}"},
		{"duplicate", "a: {type: String, description: x, required: true}\na: {type: String, description: y, required: true}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Params
			if err := yaml.Unmarshal([]byte(tt.src), &p); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParams_JSONPreservesOrder(t *testing.T) {
	src := `{"b":{"type":"String","description":"bee","required":true},"a":{"type":"Number","description":"ay","required":false}}`

	var p Params
	if err := json.Unmarshal([]byte(src), &p); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got := strings.Join(p.Names(), ","); got != "b,a" {
		t.Errorf("Names() = %s, want b,a", got)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != src {
		t.Errorf("Marshal = %s\nwant      %s", out, src)
	}
}

func TestParams_JSONDuplicate(t *testing.T) {
	src := `{"a":{"type":"String","description":"x","required":true},"a":{"type":"String","description":"y","required":true}}`
	var p Params
	err := json.Unmarshal([]byte(src), &p)
	if !errors.Is(err, ErrDuplicateParam) {
		t.Errorf("Unmarshal error = %v, want ErrDuplicateParam", err)
	}
}

func TestParams_JSONRejectsUnknownSpecKey(t *testing.T) {
	var p Params
	src := `{"title":{"type":"String","description":"t","required":true,"default":"x"}}`
	err := json.Unmarshal([]byte(src), &p)
	if err == nil {
		t.Fatal("expected error for unknown spec key")
	}
	if !strings.Contains(err.Error(), "default") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}

func TestParams_JSONNullAndEmpty(t *testing.T) {
	var p Params
	if err := json.Unmarshal([]byte(`null`), &p); err != nil {
		t.Fatalf("null: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d after null", p.Len())
	}
	out, err := json.Marshal(Params{})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "{}" {
		t.Errorf("empty Marshal = %s, want {}", out)
	}
}

func TestParams_JSONRejectsArray(t *testing.T) {
	var p Params
	if err := json.Unmarshal([]byte(`[]`), &p); err == nil {
		t.Error("expected error for array")
	}
}
