package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bolao/landing/internal/model"
	"github.com/bolao/landing/internal/view"
)

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the landing page figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.wire(cmd); err != nil {
				return err
			}

			stats, err := a.statsLoader().Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			_, err = io.WriteString(cmd.OutOrStdout(), renderStats(stats)+"\n")
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func renderStats(stats *model.Stats) string {
	s := newStyles()

	row := func(n int64, label string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.figure.Width(10).Render(view.FormatCount(n)),
			s.label.Render(label),
		)
	}

	lines := []string{
		s.title.Render("Bolão"),
		row(stats.PoolsCount, "Bolões criados"),
		row(stats.GuessesCount, "Palpites enviados"),
		row(stats.UsersCount, "pessoas já estão usando"),
	}

	if len(stats.LastUsers) == 0 {
		lines = append(lines, s.empty.Render("nenhum usuário ainda"))
	} else {
		names := make([]string, 0, len(stats.LastUsers))
		for _, u := range stats.LastUsers {
			names = append(names, s.user.Render(u.Name))
		}
		lines = append(lines, "Últimos: "+strings.Join(names, ", "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
