package types

import "time"

// Action is what a command does, or would do in a dry run, to a symlink
type Action string

const (
	// ActionNone means the symlink was left alone
	ActionNone Action = ""
	// ActionLink creates the symlink
	ActionLink Action = "link"
	// ActionUnlink removes the symlink
	ActionUnlink Action = "unlink"
)

// ListPacksResult holds the result of the 'list' command.
type ListPacksResult struct {
	Packs []PackInfo `json:"packs" yaml:"packs"`
}

// PackInfo contains summary information about a single package.
type PackInfo struct {
	Name     string `json:"name" yaml:"name"`
	Path     string `json:"path" yaml:"path"`
	Symlinks int    `json:"symlinks" yaml:"symlinks"`
	Status   string `json:"status" yaml:"status"`
}

// DisplayResult is the top-level structure for commands reporting
// symlinks: status, link and unlink.
type DisplayResult struct {
	Command string        `json:"command" yaml:"command"`
	Packs   []DisplayPack `json:"packs" yaml:"packs"`
	DryRun  bool          `json:"dryRun" yaml:"dryRun"`

	// Changed counts symlinks whose status the command changed, or would
	// change in a dry run. Failed counts those left in error.
	Changed int `json:"changed" yaml:"changed"`
	Failed  int `json:"failed" yaml:"failed"`
	Skipped int `json:"skipped" yaml:"skipped"`

	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// DisplayPack represents a single package for display.
type DisplayPack struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`

	// Status is the aggregate label: linked, unlinked, error, mixed or empty
	Status string `json:"status" yaml:"status"`

	// Summary is the aggregate as printed next to the package name
	Summary string `json:"-" yaml:"-"`

	Symlinks []DisplaySymlink `json:"symlinks" yaml:"symlinks"`
}

// DisplaySymlink represents a single declared symlink for display.
type DisplaySymlink struct {
	Kind        string `json:"kind" yaml:"kind"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Status      string `json:"status" yaml:"status"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Action is set when the command acted on the symlink, or planned to
	Action Action `json:"action,omitempty" yaml:"action,omitempty"`

	// Label is the status as printed after the destination
	Label string `json:"-" yaml:"-"`
}

// HasFailures reports whether any symlink ended in error
func (r *DisplayResult) HasFailures() bool {
	return r.Failed > 0
}
