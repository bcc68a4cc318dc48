package hooks

import (
	"fmt"

	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
)

// ErrHookTypeEmpty is returned when a hooks type is empty.
var ErrHookTypeEmpty = fmt.Errorf("hooks type cannot be empty")

// ErrUnsupportedHookEvent is returned when an unsupported hooks event is used.
func ErrUnsupportedHookEvent(event string) error {
	return pkgerrors.Wrapf(pkgerrors.ErrHookExecution, "unsupported hooks event: %s", event)
}
