// Package cli defines the Cobra command tree for the aptocom-agent CLI. Each
// file builds one top-level command (show, validate, export, etc.). Commands
// delegate to internal/agentconfig and internal/envfile and only handle flag
// parsing, I/O formatting, and exit status.
package cli
