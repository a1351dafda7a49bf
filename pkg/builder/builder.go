package builder

import (
	"context"

	"github.com/containertools/dfm/pkg/config"
)

type Builder interface {
	// initialize builder if needed
	Init() error

	// collect commands for one matrix cell
	Queue(dockerfile string, pair config.Pair)

	// execute one stage of the collected commands
	Run(ctx context.Context, stage Stage) error

	// cleanup tasks
	Terminate() error
}
