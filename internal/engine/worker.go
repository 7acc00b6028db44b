package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/GayaStar/adaptiveChess/internal/logger"
)

// worker wraps one engine subprocess. Each analysis call owns exactly one
// worker for its lifetime and must close it on every exit path.
type worker struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	log    *logger.Logger
}

func startWorker(path string) (*worker, error) {
	log := logger.Default().WithPrefix("engine")

	if path == "" {
		path = "stockfish"
	}

	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Error("failed to create stdin pipe: %v", err)
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Error("failed to create stdout pipe: %v", err)
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		log.Error("failed to start engine %s: %v", path, err)
		return nil, err
	}

	w := &worker{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		log:    log,
	}

	if err := w.handshake(); err != nil {
		log.Error("UCI handshake failed: %v", err)
		w.close()
		return nil, err
	}
	return w, nil
}

func (w *worker) handshake() error {
	if err := w.send("uci"); err != nil {
		return err
	}
	if err := w.waitFor("uciok", 2*time.Second); err != nil {
		return err
	}
	if err := w.send("isready"); err != nil {
		return err
	}
	return w.waitFor("readyok", 2*time.Second)
}

func (w *worker) send(cmd string) error {
	_, err := w.stdin.Write([]byte(cmd + "\n"))
	return err
}

func (w *worker) readLine() (string, error) {
	line, err := w.stdout.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (w *worker) waitFor(marker string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for %s", marker)
		}
		line, err := w.readLine()
		if err != nil {
			return err
		}
		if strings.Contains(line, marker) {
			return nil
		}
	}
}

// close tears the subprocess down. Safe on half-initialized workers.
func (w *worker) close() {
	if w.cmd == nil {
		return
	}
	_ = w.send("quit")
	_ = w.stdin.Close()
	if err := w.cmd.Wait(); err != nil {
		w.log.Debug("engine process exited: %v", err)
	}
	w.cmd = nil
}
