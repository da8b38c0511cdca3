package agentconfig

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AgentConfig)
		field  string
		want   error
	}{
		{"empty name", func(c *AgentConfig) { c.Name = " " }, "name", ErrEmptyName},
		{"port zero", func(c *AgentConfig) { c.Port = 0 }, "port", ErrInvalidPort},
		{"port negative", func(c *AgentConfig) { c.Port = -1 }, "port", ErrInvalidPort},
		{"port too large", func(c *AgentConfig) { c.Port = 70000 }, "port", ErrInvalidPort},
		{"no tags", func(c *AgentConfig) { c.Tags = nil }, "tags", ErrNoTags},
		{"empty tag", func(c *AgentConfig) { c.Tags = append(c.Tags, "") }, "tags[8]", ErrEmptyTag},
		{"duplicate tag", func(c *AgentConfig) { c.Tags = append(c.Tags, "DAO") }, "tags[8]", ErrDuplicateTag},
		{"bad param type", func(c *AgentConfig) {
			_ = c.Params.Set("approved", ParamSpec{Type: "Boolean", Description: "approved?"})
		}, "params.approved.type", ErrInvalidParamType},
		{"empty param description", func(c *AgentConfig) {
			_ = c.Params.Set("notes", ParamSpec{Type: ParamString})
		}, "params.notes.description", ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v in chain", err, tt.want)
			}
			fes := FieldErrors(err)
			if len(fes) != 1 {
				t.Fatalf("FieldErrors len = %d, want 1: %v", len(fes), fes)
			}
			if fes[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", fes[0].Field, tt.field)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.Name = ""
	cfg.Port = 0
	cfg.Tags = []string{"a", "a"}

	err := cfg.Validate()
	fes := FieldErrors(err)
	if len(fes) != 3 {
		t.Fatalf("FieldErrors len = %d, want 3: %v", len(fes), err)
	}
	for _, want := range []error{ErrEmptyName, ErrInvalidPort, ErrDuplicateTag} {
		if !errors.Is(err, want) {
			t.Errorf("missing %v", want)
		}
	}
}

func TestFieldError_Message(t *testing.T) {
	cfg := Default()
	cfg.Port = 99999

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "port: port must be between 1 and 65535: 99999") {
		t.Errorf("Error() = %q", err.Error())
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As(*FieldError) = false")
	}
}

func TestFieldErrors_Nil(t *testing.T) {
	if got := FieldErrors(nil); got != nil {
		t.Errorf("FieldErrors(nil) = %v", got)
	}
}
