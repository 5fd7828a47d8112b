// Package cli is the entry point: the root command runs the desktop window,
// and subcommands dispatch the same backend commands without a window.
package cli

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/filedesk/internal/capability"
	"github.com/ytget/filedesk/internal/platform"
	"github.com/ytget/filedesk/internal/ui"
)

const (
	AppID   = "com.ytget.filedesk"
	AppName = "FileDesk"
)

type options struct {
	version    string
	logLevel   string
	stats      bool
	logOutput  io.Writer
	newApp     func() fyne.App
	newSpawner func(zerolog.Logger) platform.Spawner
}

func defaultOptions(version string) *options {
	return &options{
		version:   version,
		logOutput: os.Stderr,
		newApp: func() fyne.App {
			return app.NewWithID(AppID)
		},
		newSpawner: func(logger zerolog.Logger) platform.Spawner {
			return platform.NewExecSpawner(logger)
		},
	}
}

// Execute runs the command line and returns the process exit code
func Execute(version string) int {
	if err := NewRootCmd(version).Execute(); err != nil {
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(defaultOptions(version))
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "filedesk",
		Short:         AppName + " reveals files in the file manager and clears the application cache",
		Version:       o.version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(o)
		},
	}

	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to the saved setting")

	cmd.PersistentFlags().BoolVar(&o.stats, "stats", false, "print command metrics in Prometheus text format after a subcommand")

	cmd.AddCommand(newRevealCmd(o), newClearCacheCmd(o))
	return cmd
}

// runGUI builds the application, registers the capability plugins and the
// command handlers, then blocks in the event loop until the window closes.
func runGUI(o *options) error {
	a := o.newApp()
	a.Settings().SetTheme(ui.NewDeskTheme())

	b, err := newBackend(a, o)
	if err != nil {
		return err
	}
	b.logger.Info().Str("version", o.version).Msg(AppName + " starting")

	if dir, err := b.settings.GetCacheDirectory(); err != nil {
		b.logger.Warn().Err(err).Msg("no cache directory")
	} else if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		b.logger.Warn().Err(err).Str("dir", dir).Msg("failed to ensure cache dir")
	}

	window := a.NewWindow(fmt.Sprintf("%s v%s", AppName, o.version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	host, err := registerPlugins(a, window, b.logger)
	if err != nil {
		return err
	}

	root := ui.NewRootUI(window, b.settings, b.registry, host, b.logger)
	root.SetStatsSource(b.metrics)
	b.registry.SetUpdateCallback(root.OnInvocationUpdate)
	root.SetOnSettingsSaved(func() {
		if err := b.reload(); err != nil {
			b.logger.Error().Err(err).Msg("failed to apply settings")
		}
	})

	window.ShowAndRun()
	return nil
}

func registerPlugins(a fyne.App, window fyne.Window, logger zerolog.Logger) (*capability.Host, error) {
	host := capability.NewHost(a, logger)
	for _, p := range []capability.Plugin{
		capability.NewFilesystemPlugin(),
		capability.NewDialogPlugin(window),
	} {
		if err := host.Register(p); err != nil {
			return nil, err
		}
	}
	return host, nil
}
