// Package types defines the shared service contract: tool definitions,
// execution context, and results exchanged between the host and providers.
package types
