package thread

import "context"

// Repository is the port for thread persistence. Save writes the whole
// document in one operation; partial message writes are never observable.
type Repository interface {
	Get(ctx context.Context, id string) (*Thread, error)
	Save(ctx context.Context, t *Thread) error
	// List returns all threads sorted by last update, most recent first.
	List(ctx context.Context) ([]Thread, error)
	Delete(ctx context.Context, id string) error
}
