package driven

import (
	"context"

	"github.com/pecoelho01/portfolio/internal/domain/model"
)

// RepoLister defines the driven port for reading an account's public
// repositories. Implementations issue a single bounded request sorted by most
// recently updated; they do not paginate or retry.
//
// A non-success HTTP status is reported as *model.HTTPStatusError.
type RepoLister interface {
	ListRepositories(ctx context.Context, account string) ([]model.RepositorySummary, error)
}
