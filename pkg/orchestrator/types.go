//go:generate mockgen -destination=./mocks/orchestrator.go . Opener

package orchestrator

import (
	"context"

	"github.com/glorpus-work/o3data/pkg/data"
	"github.com/glorpus-work/o3data/pkg/dataset"
)

// Opener constructs datasets by name. *data.Registry implements it.
type Opener interface {
	Open(ctx context.Context, name, dataRoot string, opts ...dataset.Option) (data.Resource, error)
}

// Orchestrator fetches and deletes several datasets at once.
type Orchestrator struct {
	Datasets Opener
	Hooks    Hooks // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // fetching|done|error|deleting|deleted
	ID    string // dataset name
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control FetchAll execution.
type Options struct {
	DataRoot    string
	Concurrency int
	// DatasetOptions returns per-dataset options such as extra mirrors.
	DatasetOptions func(name string) []dataset.Option
}

// DeleteOptions select what Delete removes. Neither set means both.
type DeleteOptions struct {
	DataRoot string
	Download bool
	Extract  bool
}
