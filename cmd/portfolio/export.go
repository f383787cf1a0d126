package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	webhandler "github.com/pecoelho01/portfolio/internal/adapter/driving/web"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

func exportCmd() *cobra.Command {
	var out, theme, page string
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a page to a self-contained HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := webhandler.ExportOptions{}

			switch page {
			case "landing":
				opts.Kind = webhandler.PageLanding
			case "projects":
				opts.Kind = webhandler.PageProjects
			default:
				return fmt.Errorf("unknown page %q (want landing or projects)", page)
			}

			t, ok := model.ParseTheme(theme)
			if !ok {
				return fmt.Errorf("unknown theme %q (want light or dark)", theme)
			}
			opts.Theme = t

			if limit > 0 {
				opts.LimitAttr = fmt.Sprint(limit)
			}

			feed, _, err := newFeed()
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := webhandler.Export(cmd.Context(), w, feed, opts, logger); err != nil {
				return err
			}
			if out != "" && out != "-" {
				logger.Info("page exported", "path", out, "page", page, "theme", opts.Theme)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "Output file (- for stdout)")
	cmd.Flags().StringVar(&theme, "theme", string(model.ThemeLight), "Theme to render (light or dark)")
	cmd.Flags().StringVar(&page, "page", "landing", "Page to render (landing or projects)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of projects (default: the page's configured limit)")
	return cmd
}
