package homesymlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link dotfiles packages into your home directory"
	MsgLinkShort       = "Create the symlinks of packages"
	MsgUnlinkShort     = "Remove the symlinks of packages"
	MsgStatusShort     = "Show the symlink status of packages"
	MsgListShort       = "List all packages"
	MsgListLong        = "List displays all packages found in the packages root with their symlink count and status."
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "home-symlink version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrRootUnset   = "no packages root: pass --dir or set HOME_SYMLINK_DIR"
	MsgErrLinkPacks   = "failed to link packages: %w"
	MsgErrUnlinkPacks = "failed to unlink packages: %w"
	MsgErrStatusPacks = "failed to get package status: %w"
	MsgErrListPacks   = "failed to list packages: %w"
	MsgErrNoCommand   = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagDir     = "Packages root directory (default $HOME_SYMLINK_DIR)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagForceLn = "Remove whatever occupies a destination before linking"
	MsgFlagForceUn = "Remove destinations even if home-symlink did not create them"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/unlink-example.txt
	msgUnlinkExampleRaw string
	MsgUnlinkExample    = strings.TrimRight(msgUnlinkExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
