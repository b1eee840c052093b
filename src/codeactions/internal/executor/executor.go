package executor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger))
})

//go:generate mockgen -source=executor.go -destination=executormock/executor_mock.go -package=executormock

// Executor wraps the execution of "os/exec".Cmd's to allow adding logs to each exec and makes it easier to test.
type Executor interface {
	// Start logs and starts the Cmd specified, connecting its stdin and stdout to the returned Process.
	Start(cmd *exec.Cmd) (Process, error)
}

// Process is a running command that is talked to over its standard streams.
type Process interface {
	io.ReadWriteCloser
	// Pid returns the process id.
	Pid() int
	// Done is closed once the process exited.
	Done() <-chan struct{}
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// NewExecutor creates a new executorImp with a noop logger unless overridden.
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Start logs the Path/Args, wires the standard streams and starts the command.
// Lines written to stderr are logged at debug level.
func (l *executorImp) Start(cmd *exec.Cmd) (Process, error) {
	l.logCommand(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", cmd.Path, err)
	}

	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		done:   make(chan struct{}),
	}
	logger := l.Logger.With("pid", cmd.Process.Pid, "path", cmd.Path)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			logger.Debug(scanner.Text())
		}
	}()

	go func() {
		// Wait must only be called once stderr has been drained.
		p.wg.Wait()
		p.waitErr = cmd.Wait()
		logger.Infow("process exited", "error", p.waitErr)
		close(p.done)
	}()
	return p, nil
}

// Logs the command specified: Path, Dir, Args
func (l *executorImp) logCommand(cmd *exec.Cmd) {
	args := []string{}
	if len(cmd.Args) > 1 {
		args = cmd.Args[1:] // First arg is always the command itself
	}
	l.Logger.Infow("Exec",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", args,
	)
}

type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser

	wg        sync.WaitGroup
	done      chan struct{}
	waitErr   error
	closeOnce sync.Once
}

func (p *process) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

func (p *process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

func (p *process) Pid() int {
	return p.cmd.Process.Pid
}

func (p *process) Done() <-chan struct{} {
	return p.done
}

// Close closes stdin and kills the process if it did not exit yet. It returns once the process was reaped.
func (p *process) Close() error {
	var err error
	p.closeOnce.Do(func() {
		// Reaping the process closes stdin as well.
		if closeErr := p.stdin.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			err = closeErr
		}
		select {
		case <-p.done:
		default:
			if killErr := p.cmd.Process.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
				err = multierr.Append(err, killErr)
			}
		}
		<-p.done
	})
	return err
}
