// Package types defines the results returned by the commands in
// pkg/commands and consumed by the renderers in pkg/ui.
package types
