package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bolao/landing/internal/view"
)

type buildOptions struct {
	out    string
	action string
}

func newBuildCmd(a *app) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the landing page to a static HTML file",
		Long: "build loads the four landing page figures from the backend and writes the page plus its static assets. Any failed request aborts the build.\n\n" +
			"A static host cannot answer the pool form: point --action at a running bolao web server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.wire(cmd); err != nil {
				return err
			}
			return runBuild(cmd.Context(), a, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", filepath.Join("dist", "index.html"), "output HTML file")
	cmd.Flags().StringVar(&opts.action, "action", "/pools",
		"URL the pool form posts to; must be the POST /pools route of a bolao web server (cmd/web), not the backend API, which answers JSON")

	return cmd
}

func runBuild(ctx context.Context, a *app, opts buildOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := a.statsLoader().Load(ctx)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	dir := filepath.Dir(opts.out)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	defer f.Close()

	page := view.Home(view.HomeProps{
		Stats:       stats,
		FormAction:  opts.action,
		AssetPrefix: ".",
	})
	if err := page.Render(ctx, f); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	if err := writeAssets(filepath.Join(dir, "static")); err != nil {
		return err
	}

	a.logger.Info("page built", "out", opts.out, "pools_count", stats.PoolsCount)
	return nil
}

// writeAssets copies the embedded page assets into dir.
func writeAssets(dir string) error {
	assets := view.StaticFS()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", path, err)
		}
		return nil
	})
}
