package homesymlink

import (
	"fmt"

	"github.com/arthur-debert/home-symlink/internal/version"
	"github.com/arthur-debert/home-symlink/pkg/commands"
	"github.com/arthur-debert/home-symlink/pkg/config"
	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	dir       string
	dryRun    bool
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "home-symlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", MsgFlagDir)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newLinkCmd(opts))
	rootCmd.AddCommand(newUnlinkCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// settings is what a command needs once flags and configuration are merged
type settings struct {
	cfg    *config.Config
	format ui.Format
}

// loadSettings loads the configuration and resolves the output format.
// The --format flag beats the configured format.
func loadSettings(opts *globalOptions) (*settings, error) {
	cfg, err := config.Load(opts.dir)
	if err != nil {
		return nil, err
	}

	name := cfg.Output.Format
	if opts.format != "" {
		name = opts.format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return &settings{cfg: cfg, format: format}, nil
}

// loadRootSettings is loadSettings for commands that need the packages root
func loadRootSettings(opts *globalOptions) (*settings, error) {
	s, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.cfg.Root == "" {
		return nil, errors.New(errors.ErrRootUnset, MsgErrRootUnset)
	}
	log.Info().Str("root", s.cfg.Root).Msg("Using packages root")
	return s, nil
}

// packNamesCompletion provides shell completion for package names
func packNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		s, err := loadRootSettings(opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		result, err := commands.ListPacks(commands.ListPacksOptions{
			Root:  s.cfg.Root,
			Packs: s.cfg.PackOptions(),
		})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		// Filter out already specified packages
		given := make(map[string]bool, len(args))
		for _, arg := range args {
			given[arg] = true
		}

		var available []string
		for _, pack := range result.Packs {
			if !given[pack.Name] {
				available = append(available, pack.Name)
			}
		}

		return available, cobra.ShellCompDirectiveNoFileComp
	}
}

func newLinkCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "link [packages...]",
		Aliases:           []string{"l"},
		Short:             MsgLinkShort,
		Long:              MsgLinkLong,
		Example:           MsgLinkExample,
		GroupID:           "core",
		ValidArgsFunction: packNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadRootSettings(opts)
			if err != nil {
				return err
			}

			result, err := commands.LinkPacks(commands.LinkPacksOptions{
				Root:      s.cfg.Root,
				PackNames: args,
				Packs:     s.cfg.PackOptions(),
				Force:     force,
				DryRun:    opts.dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrLinkPacks, err)
			}

			return ui.Render(cmd.OutOrStdout(), result, s.format)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForceLn)
	return cmd
}

func newUnlinkCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "unlink [packages...]",
		Aliases:           []string{"u"},
		Short:             MsgUnlinkShort,
		Long:              MsgUnlinkLong,
		Example:           MsgUnlinkExample,
		GroupID:           "core",
		ValidArgsFunction: packNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadRootSettings(opts)
			if err != nil {
				return err
			}

			result, err := commands.UnlinkPacks(commands.UnlinkPacksOptions{
				Root:      s.cfg.Root,
				PackNames: args,
				Packs:     s.cfg.PackOptions(),
				Force:     force,
				DryRun:    opts.dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUnlinkPacks, err)
			}

			return ui.Render(cmd.OutOrStdout(), result, s.format)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForceUn)
	return cmd
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "status [packages...]",
		Aliases:           []string{"s"},
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		Example:           MsgStatusExample,
		GroupID:           "core",
		ValidArgsFunction: packNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadRootSettings(opts)
			if err != nil {
				return err
			}

			result, err := commands.StatusPacks(commands.StatusPacksOptions{
				Root:      s.cfg.Root,
				PackNames: args,
				Packs:     s.cfg.PackOptions(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatusPacks, err)
			}

			return ui.Render(cmd.OutOrStdout(), result, s.format)
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadRootSettings(opts)
			if err != nil {
				return err
			}

			result, err := commands.ListPacks(commands.ListPacksOptions{
				Root:  s.cfg.Root,
				Packs: s.cfg.PackOptions(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrListPacks, err)
			}

			return ui.Render(cmd.OutOrStdout(), result, s.format)
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(opts)
			if err != nil {
				return err
			}

			out, err := config.Marshal(s.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
