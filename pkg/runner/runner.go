package runner

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/containertools/dfm/pkg/cmd"
)

// Runner executes queued commands sequentially, each one to completion
// before the next starts. In dry-run mode it only prints them.
type Runner struct {
	tasks  []*cmd.Cmd
	dryRun bool
}

func New() *Runner {
	return &Runner{
		tasks: []*cmd.Cmd{},
	}
}

func (r *Runner) Contains(task *cmd.Cmd) bool {
	for _, t := range r.tasks {
		if t.Equal(task) {
			return true
		}
	}
	return false
}

func (r *Runner) AddTask(task ...*cmd.Cmd) *Runner {
	r.tasks = append(r.tasks, task...)
	return r
}

// AddUniq queues only tasks that are not already queued.
func (r *Runner) AddUniq(task ...*cmd.Cmd) *Runner {
	for _, t := range task {
		if !r.Contains(t) {
			r.tasks = append(r.tasks, t)
		}
	}
	return r
}

func (r *Runner) DryRun(flag bool) *Runner {
	r.dryRun = flag
	return r
}

func (r *Runner) Tasks() []*cmd.Cmd {
	return r.tasks
}

func (r *Runner) Run(ctx context.Context) error {
	for _, c := range r.tasks {
		if r.dryRun {
			log.Info().Str("cmd", c.String()).Msg("DRY-RUN: Would run")
			continue
		}
		if _, err := c.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
