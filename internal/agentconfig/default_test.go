package agentconfig

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"
)

func TestDefault_TopLevelKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default(), FormatJSON); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	var got []string
	for k := range raw {
		got = append(got, k)
	}
	sort.Strings(got)
	want := Keys()
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys = %v, want %v", got, want)
			break
		}
	}
}

func TestDefault_Values(t *testing.T) {
	cfg := Default()

	if cfg.Name != "aptocom-proposal-agent" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.ReadmePath != "./README.md" {
		t.Errorf("ReadmePath = %q", cfg.ReadmePath)
	}
	if cfg.Env != "./.env" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.Params.Len() != 10 {
		t.Errorf("Params.Len() = %d, want 10", cfg.Params.Len())
	}
	if len(cfg.Tags) != 8 || cfg.Tags[0] != "LangChain" || cfg.Tags[7] != "TypeScript" {
		t.Errorf("Tags = %v", cfg.Tags)
	}
}

func TestDefault_ParamDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		typ      ParamType
		required bool
	}{
		{"title", ParamString, true},
		{"description", ParamString, true},
		{"requested_amount", ParamNumber, true},
		{"team_info", ParamString, false},
		{"budget_breakdown", ParamString, false},
		{"milestones", ParamString, false},
		{"expected_roi", ParamString, false},
		{"risk_factors", ParamString, false},
		{"proposal_id", ParamString, false},
		{"milestone_number", ParamNumber, false},
	}

	names := Default().Params.Names()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if names[i] != tt.name {
				t.Errorf("Names()[%d] = %q, want %q", i, names[i], tt.name)
			}
			spec, ok := Default().Params.Get(tt.name)
			if !ok {
				t.Fatalf("param %q not declared", tt.name)
			}
			if spec.Type != tt.typ {
				t.Errorf("Type = %q, want %q", spec.Type, tt.typ)
			}
			if spec.Required != tt.required {
				t.Errorf("Required = %v, want %v", spec.Required, tt.required)
			}
			if spec.Description == "" {
				t.Error("Description is empty")
			}
		})
	}
}

func TestDefault_PassesValidation(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	result, err := ValidateConfig(Default())
	if err != nil {
		t.Fatalf("ValidateConfig error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Tags[0] = "mutated"
	a.Port = 1
	if err := a.Params.Set("extra", ParamSpec{Type: ParamString, Description: "x"}); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	b := Default()
	if b.Tags[0] != "LangChain" {
		t.Errorf("Tags[0] = %q after mutating a copy", b.Tags[0])
	}
	if b.Port != DefaultPort {
		t.Errorf("Port = %d after mutating a copy", b.Port)
	}
	if _, ok := b.Params.Get("extra"); ok {
		t.Error("param added to a copy leaked into Default()")
	}
}

func TestDefault_TagsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tag := range Default().Tags {
		if seen[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
}

func TestParamType_Valid(t *testing.T) {
	tests := []struct {
		in   ParamType
		want bool
	}{
		{ParamString, true},
		{ParamNumber, true},
		{"string", false},
		{"Boolean", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.want {
			t.Errorf("ParamType(%q).Valid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	cfg := Default()
	if !cfg.HasTag("Gemini") {
		t.Error("HasTag(Gemini) = false")
	}
	if cfg.HasTag("gemini") {
		t.Error("HasTag is case-sensitive, got true for gemini")
	}
}
