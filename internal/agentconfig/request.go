package agentconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrEmptyPayload is returned by DecodeRequest when the body is empty or null.
var ErrEmptyPayload = errors.New("no request data provided")

// IssueKind classifies a request parameter problem.
type IssueKind string

// Issue kinds reported by CheckRequest.
const (
	IssueMissing IssueKind = "missing"
	IssueType    IssueKind = "type"
	IssueUnknown IssueKind = "unknown"
)

// ParamIssue is one problem found in a request payload.
type ParamIssue struct {
	Param   string    `json:"param"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

func (i ParamIssue) String() string {
	return fmt.Sprintf("%s (%s): %s", i.Param, i.Kind, i.Message)
}

// CheckOptions tunes CheckRequest.
type CheckOptions struct {
	// Strict reports payload keys that are not declared params.
	Strict bool
}

// CheckRequest checks payload against the params declared by cfg.
// Required params must be present and non-null; present values must match
// their declared type. Issues follow param declaration order, with unknown
// keys last in lexical order. An empty result means the payload is acceptable.
func CheckRequest(cfg AgentConfig, payload map[string]any, opts CheckOptions) []ParamIssue {
	var issues []ParamIssue

	for name, spec := range cfg.Params.All() {
		v, ok := payload[name]
		if !ok || v == nil {
			if spec.Required {
				issues = append(issues, ParamIssue{
					Param:   name,
					Kind:    IssueMissing,
					Message: "missing required field: " + name,
				})
			}
			continue
		}
		if !matchesType(spec.Type, v) {
			issues = append(issues, ParamIssue{
				Param:   name,
				Kind:    IssueType,
				Message: fmt.Sprintf("expected %s, got %s", spec.Type, describeValue(v)),
			})
		}
	}

	if opts.Strict {
		var unknown []string
		for k := range payload {
			if _, ok := cfg.Params.Get(k); !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			issues = append(issues, ParamIssue{
				Param:   k,
				Kind:    IssueUnknown,
				Message: "not a declared parameter",
			})
		}
	}

	return issues
}

// DecodeRequest decodes a single JSON object. Numbers are kept as json.Number.
func DecodeRequest(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPayload
		}
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if payload == nil {
		return nil, ErrEmptyPayload
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding request: unexpected data after JSON object")
	}
	return payload, nil
}

func matchesType(t ParamType, v any) bool {
	switch t {
	case ParamString:
		_, ok := v.(string)
		return ok
	case ParamNumber:
		switch n := v.(type) {
		case json.Number:
			return validNumber(n)
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
	}
	return false
}

// validNumber reports whether n is a syntactically valid number. Values
// outside float64 range still count.
func validNumber(n json.Number) bool {
	_, err := n.Float64()
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func describeValue(v any) string {
	switch n := v.(type) {
	case json.Number:
		if !validNumber(n) {
			return "malformed number"
		}
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
