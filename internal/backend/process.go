package backend

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// stopGrace is how long Stop waits for the child to close its output
// after stdin is closed before killing it
const stopGrace = 5 * time.Second

// Process is a backend running as a child process, spoken to over its
// stdin and stdout. Its stderr is forwarded to the log.
type Process struct {
	*Conn
	cmd        *exec.Cmd
	logger     *slog.Logger
	stderrDone chan struct{}
}

// Start launches command and connects to it
func Start(ctx context.Context, command string, args []string, logger *slog.Logger) (*Process, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if command == "" {
		return nil, fmt.Errorf("no backend command configured")
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("backend %q not found: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("backend stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("backend stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("backend stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start backend %q: %w", path, err)
	}
	logger.Info("started backend", "command", path, "args", args, "pid", cmd.Process.Pid)

	stderrDone := make(chan struct{})
	go func() {
		defer close(stderrDone)
		s := bufio.NewScanner(stderr)
		for s.Scan() {
			logger.Debug("backend stderr", "line", s.Text())
		}
	}()

	return &Process{
		Conn:       NewConn(stdout, stdin, logger),
		cmd:        cmd,
		logger:     logger,
		stderrDone: stderrDone,
	}, nil
}

// Stop closes stdin and waits for the child to exit. Wait is only called
// once both output pipes have been read to the end.
func (p *Process) Stop() error {
	if err := p.Conn.Close(); err != nil {
		p.logger.Warn("closing backend stdin", "error", err)
	}
	p.drain(p.Conn.Done())
	p.drain(p.stderrDone)
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("backend exited: %w", err)
	}
	return nil
}

func (p *Process) drain(done <-chan struct{}) {
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(stopGrace):
		p.logger.Warn("backend still running after stdin closed, killing", "pid", p.cmd.Process.Pid)
		if err := p.cmd.Process.Kill(); err != nil {
			p.logger.Warn("killing backend", "error", err)
		}
		<-done
	}
}
