// Package config manages user-level settings stored at ~/.aptocom-agent/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default descriptor path and log level. Every key can be overridden with
// an APTOCOM_AGENT_<KEY> environment variable.
package config
