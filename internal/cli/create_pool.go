package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bolao/landing/internal/metrics"
	"github.com/bolao/landing/internal/service"
)

func newCreatePoolCmd(a *app) *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "create-pool <title>",
		Short: "Create a pool and copy its invite code",
		Long:  "create-pool creates a pool on the backend, prints its invite code and copies it to the terminal clipboard.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.wire(cmd); err != nil {
				return err
			}

			s := newStyles()
			form := service.NewForm()
			form.SetTitle(strings.Join(args, " "))

			var clip service.Clipboard = osc52Clipboard{w: cmd.ErrOrStderr()}
			if noCopy {
				clip = discardClipboard{}
			}
			notify := terminalNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), styles: s}

			creator := service.NewPoolCreator(a.api, nil, metrics.NewNoop(), a.logger)
			code, err := creator.Submit(cmd.Context(), form, service.Submission{}, clip, notify)
			if code != "" {
				fmt.Fprintln(cmd.OutOrStdout(), s.code.Render(code))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "do not copy the code to the clipboard")

	return cmd
}
