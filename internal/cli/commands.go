package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/filedesk/internal/command"
	"github.com/ytget/filedesk/internal/model"
)

func newRevealCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a file in the platform file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend(o.newApp(), o)
			if err != nil {
				return err
			}

			res := b.registry.DispatchJSON(cmd.Context(), command.ShowInFolder, command.ShowInFolderArgs{Path: args[0]})
			if err := writeStats(o, b, cmd.OutOrStdout()); err != nil {
				return err
			}
			return res.Err()
		},
	}
}

func newClearCacheCmd(o *options) *cobra.Command {
	var (
		marker string
		dir    string
	)

	cmd := &cobra.Command{
		Use:   "clear-cache",
		Short: "Delete cache files whose name contains the cache marker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := newBackend(o.newApp(), o)
			if err != nil {
				return err
			}

			// Flags apply to this run only
			if marker != "" || dir != "" {
				if marker == "" {
					marker = b.settings.GetCacheMarker()
				}
				if err := b.override(marker, dir); err != nil {
					return err
				}
			}

			res := b.registry.DispatchJSON(cmd.Context(), command.ClearCache, nil)
			if res.OK {
				report, ok := res.Value.(*model.ClearReport)
				if !ok {
					return errors.New("clear_cache returned no report")
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
				for _, name := range report.Removed {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
			}

			if err := writeStats(o, b, cmd.OutOrStdout()); err != nil {
				return err
			}
			return res.Err()
		},
	}

	cmd.Flags().StringVar(&marker, "marker", "", "name fragment of files to delete (default: saved setting)")
	cmd.Flags().StringVar(&dir, "dir", "", "cache directory to clear (default: saved setting or OS cache dir)")
	return cmd
}

// writeStats prints the backend's metrics when --stats is set
func writeStats(o *options, b *backend, w io.Writer) error {
	if !o.stats {
		return nil
	}
	fmt.Fprintln(w)
	return b.metrics.WriteText(w)
}
