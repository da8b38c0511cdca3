package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"GOOGLE_API_KEY", "AIzaSyA-123456", "AIza***"},
		{"DB_PASSWORD", "hunter2", "hunt***"},
		{"github_token", "ghp_abcdef", "ghp_***"},
		{"SPLUNK_CREDENTIAL", "abc", "***"},
		{"MY_SECRET", "", "***"},
		{"PORT", "5000", "5000"},
		{"LOG_LEVEL", "info", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, Redact(tt.key, tt.value))
		})
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# Gemini credentials
GOOGLE_API_KEY=AIzaSyA-secret
export PORT=5000

QUOTED="hello world"
SINGLE='x=y'
CONNECTION_STRING=host=localhost port=5432
not a pair
EMPTY_VALUE=
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	entries, err := Parse(path)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, Entry{Key: "GOOGLE_API_KEY", Value: "AIzaSyA-secret", Line: 2}, entries[0])
	assert.Equal(t, "PORT", entries[1].Key)
	assert.Equal(t, "5000", entries[1].Value)
	assert.Equal(t, "hello world", entries[2].Value)
	assert.Equal(t, "x=y", entries[3].Value)
	assert.Equal(t, "host=localhost port=5432", entries[4].Value)
	assert.Equal(t, "", entries[5].Value)
}

func TestParse_NotFound(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestMissing(t *testing.T) {
	entries := []Entry{
		{Key: "GOOGLE_API_KEY", Value: "k"},
		{Key: "PORT", Value: ""},
		{Key: "PORT", Value: "5000"},
		{Key: "EMPTY", Value: ""},
	}
	assert.Equal(t, []string{"EMPTY", "ABSENT"}, Missing(entries, "GOOGLE_API_KEY", "EMPTY", "PORT", "ABSENT"))
	assert.Nil(t, Missing(entries, "GOOGLE_API_KEY"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		ref        string
		want       string
	}{
		{"relative to descriptor", "/srv/agent/agent.yaml", "./.env", "/srv/agent/.env"},
		{"nested", "/srv/agent/agent.yaml", "../shared/README.md", "/srv/shared/README.md"},
		{"absolute passes through", "/srv/agent/agent.yaml", "/etc/agent.env", "/etc/agent.env"},
		{"no descriptor", "", "./.env", ".env"},
		{"empty ref", "/srv/agent.yaml", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.descriptor, tt.ref))
		})
	}
}
