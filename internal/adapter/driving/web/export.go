package web

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/pecoelho01/portfolio/internal/application"
	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// ExportOptions configures a static page export.
type ExportOptions struct {
	Kind      PageKind
	Theme     model.Theme
	LimitAttr string
}

// Export renders a self-contained HTML page to w. The stylesheet is inlined
// and the theme toggle is left unbound since there is no server to post to.
func Export(ctx context.Context, w io.Writer, feed *application.FeedService, opts ExportOptions, logger *slog.Logger) error {
	css, err := fs.ReadFile(StaticFS, "static/styles.css")
	if err != nil {
		return fmt.Errorf("reading embedded stylesheet: %w", err)
	}

	page := NewPage(opts.Kind, opts.LimitAttr, "")
	page.inlineStyles = string(css)

	application.NewThemeManager(nil, "", nil, logger).ApplyTheme(page, opts.Theme)
	feed.LoadProjects(ctx, page)

	if err := PageView(page, feed.Account()).Render(ctx, w); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
