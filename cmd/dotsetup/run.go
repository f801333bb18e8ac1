package dotsetup

import (
	"github.com/arthur-debert/dotsetup/pkg/bootstrap"
	"github.com/arthur-debert/dotsetup/pkg/config"
	"github.com/arthur-debert/dotsetup/pkg/crontab"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/executor"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/manifest"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/ui"
	"github.com/spf13/cobra"
)

// newTable builds the crontab boundary. Tests swap it for a fake.
var newTable = func(cfg *config.Config) crontab.Table {
	return crontab.NewSystemTable(executor.New(cfg.Crontab.Timeout), cfg.Crontab.Binary)
}

// runManifest loads configuration and the manifest, runs it in mode and
// renders the report to the command's output.
func runManifest(cmd *cobra.Command, flags *globalFlags, args []string, mode bootstrap.Mode, dryRun bool) (*bootstrap.Report, error) {
	logger := logging.GetLogger("cmd." + cmd.Name())

	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrRenderer)
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout(), ui.Options{ShowDiff: cfg.Output.Diff})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrRenderer)
	}

	manifestPath := cfg.Manifest.Path
	if len(args) > 0 {
		manifestPath = args[0]
	}
	manifestPath, err = paths.Expand(manifestPath, "")
	if err != nil {
		return nil, err
	}

	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	m, err := manifest.Load(fs, manifestPath)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("manifest", manifestPath).
		Str("mode", string(mode)).
		Bool("dryRun", dryRun).
		Msg("Running manifest")

	runner := bootstrap.New(fs, newTable(cfg), bootstrap.Options{
		DryRun:          dryRun,
		Comment:         cfg.Markers.Comment,
		FileMode:        cfg.Files.Mode,
		LaunchAgentsDir: p.LaunchAgentsDir(),
	})
	report := runner.Run(cmd.Context(), m, mode)

	if err := renderer.RenderReport(report); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render report")
	}
	return report, nil
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	opts := config.LoadOptions{File: flags.configFile}
	if flags.format != "" {
		opts.Overrides = map[string]interface{}{"output.format": flags.format}
	}
	cfg, err := config.Load(opts)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
		}
		return nil, err
	}
	return cfg, nil
}

func failedTargets(report *bootstrap.Report) error {
	if n := report.Count(bootstrap.StatusFailed); n > 0 {
		return errors.Newf(errors.ErrTargetsFailed, MsgErrTargetsFailed, n).
			WithDetail("failed", n)
	}
	return nil
}

func pendingChanges(report *bootstrap.Report) error {
	if n := report.Count(bootstrap.StatusChanged); n > 0 {
		return errors.Newf(errors.ErrChangesPending, MsgErrChangesPending, n).
			WithDetail("changed", n)
	}
	return nil
}
