// Package agentconfig describes the AptoCom proposal agent to the platform
// that hosts it. The descriptor is a single AgentConfig record: identity,
// README and env file references, the request parameter schema, the listen
// port and discovery tags.
//
// The built-in descriptor is returned by Default. Descriptors can also be read
// from YAML or JSON files (ParseFile), validated structurally (AgentConfig.Validate)
// or against the embedded JSON Schema (ValidateDocument), and used to check an
// incoming request payload (CheckRequest).
package agentconfig
