package dotsetup

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Converge a machine towards a declared setup"
	MsgApplyShort      = "Apply every target in the manifest"
	MsgCheckShort      = "Report pending changes without writing"
	MsgCleanShort      = "Remove everything the manifest manages"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgVersionFormat = "dotsetup version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig     = "failed to load configuration"
	MsgErrRenderer       = "failed to create output renderer"
	MsgErrTargetsFailed  = "%d target(s) failed"
	MsgErrChangesPending = "%d target(s) would change"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/dotsetup/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagManDir  = "Directory to write man pages to"
)

// Help topics served by `dotsetup help <topic>`
//
//go:embed topics
var helpTopics embed.FS

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/clean-long.txt
	msgCleanLongRaw string
	MsgCleanLong    = strings.TrimSpace(msgCleanLongRaw)

	//go:embed msgs/clean-example.txt
	msgCleanExampleRaw string
	MsgCleanExample    = strings.TrimRight(msgCleanExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
