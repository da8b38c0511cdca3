package agentconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors reported by AgentConfig.Validate and Params.Set.
var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrEmptyParamName   = errors.New("param name must not be empty")
	ErrDuplicateParam   = errors.New("duplicate param")
	ErrInvalidParamType = errors.New("invalid param type")
	ErrEmptyDescription = errors.New("param description must not be empty")
	ErrInvalidPort      = errors.New("port must be between 1 and 65535")
	ErrNoTags           = errors.New("at least one tag is required")
	ErrEmptyTag         = errors.New("tag must not be empty")
	ErrDuplicateTag     = errors.New("duplicate tag")
)

// MaxPort is the highest valid TCP port.
const MaxPort = 65535

// FieldError locates a validation failure at a descriptor field.
type FieldError struct {
	Field  string // e.g. "port", "params.title.type", "tags[3]"
	Err    error  // one of the sentinel errors
	Detail string // offending value, if useful
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Validate checks the structural invariants of c and returns every failure
// joined into one error, or nil.
func (c AgentConfig) Validate() error {
	var errs []error
	add := func(field string, err error, detail string) {
		errs = append(errs, &FieldError{Field: field, Err: err, Detail: detail})
	}

	if strings.TrimSpace(c.Name) == "" {
		add(KeyName, ErrEmptyName, "")
	}

	for name, spec := range c.Params.All() {
		field := KeyParams + "." + name
		if !spec.Type.Valid() {
			add(field+".type", ErrInvalidParamType, strconv.Quote(string(spec.Type)))
		}
		if strings.TrimSpace(spec.Description) == "" {
			add(field+".description", ErrEmptyDescription, "")
		}
	}

	if c.Port < 1 || c.Port > MaxPort {
		add(KeyPort, ErrInvalidPort, strconv.Itoa(c.Port))
	}

	if len(c.Tags) == 0 {
		add(KeyTags, ErrNoTags, "")
	}
	seen := make(map[string]int, len(c.Tags))
	for i, tag := range c.Tags {
		field := fmt.Sprintf("%s[%d]", KeyTags, i)
		if tag == "" {
			add(field, ErrEmptyTag, "")
			continue
		}
		if first, ok := seen[tag]; ok {
			add(field, ErrDuplicateTag, fmt.Sprintf("%q already at index %d", tag, first))
			continue
		}
		seen[tag] = i
	}

	return errors.Join(errs...)
}

// FieldErrors unpacks the joined error returned by Validate.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
