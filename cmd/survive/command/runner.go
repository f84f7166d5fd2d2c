package command

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pixil98/go-service"
)

// Runner carries the config and workers between service.NewApp and the run.
// App.Run stops on SIGINT, but console and tui games use SIGINT to interrupt
// the current prompt, so those modes start the workers under SIGTERM alone.
type Runner struct {
	cfg     *Config
	workers service.WorkerList
}

func NewRunner() *Runner {
	return &Runner{cfg: NewConfig()}
}

// Config is the value service.NewApp decodes the config file into.
func (r *Runner) Config() *Config {
	return r.cfg
}

// Build is the service.WorkerBuilder. It moves logging off the game screen
// before any worker starts.
func (r *Runner) Build(config any) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}
	r.cfg = cfg

	workers, err := BuildWorkers(cfg)
	if err != nil {
		return nil, err
	}

	logFile, err := cfg.Log.Setup(cfg.Mode.Interactive())
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		workers["log"] = closerWorker{c: logFile}
	}

	r.workers = workers
	return workers, nil
}

// Run starts the workers and blocks until they all exit.
func (r *Runner) Run(ctx context.Context, app *service.App) error {
	if !r.cfg.Mode.Interactive() {
		return app.Run(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	return r.workers.Start(ctx)
}
