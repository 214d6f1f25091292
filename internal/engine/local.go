package engine

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/errors"
	"github.com/termdeck/termdeck/internal/logger"
)

const (
	defaultCols = 80
	defaultRows = 24

	// tailSize bounds the output kept for copy-to-clipboard.
	tailSize = 4096
)

// LocalEngineOptions configures a LocalEngine.
type LocalEngineOptions struct {
	Shell string // Command for surfaces created without an explicit one

	// ConfirmClose gates surface destruction on confirmation while the
	// process lives. Queried at evaluation time, not snapshotted, so a
	// settings change applies to surfaces that already exist.
	ConfirmClose func() bool

	CopyText  func(string) error     // Clipboard sink for copy actions
	PasteText func() (string, error) // Clipboard source for paste actions
	OnExit    func(Surface)          // Called once when a surface's process exits
}

// LocalEngine runs each surface as a local process attached to a PTY.
type LocalEngine struct {
	opts LocalEngineOptions
}

// NewLocalEngine returns an engine that spawns local PTY-backed surfaces.
func NewLocalEngine(opts LocalEngineOptions) *LocalEngine {
	if opts.Shell == "" {
		opts.Shell = "/bin/sh"
	}
	return &LocalEngine{opts: opts}
}

// NewSurface spawns a process on a fresh PTY and returns its surface.
func (e *LocalEngine) NewSurface(opts SurfaceOptions) (Surface, error) {
	command := opts.Command
	if command == "" {
		command = e.opts.Shell
	}
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}

	cmd := exec.Command(command)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	cmd.Env = append(cmd.Env, opts.Env...)
	if opts.Dir != "" {
		if _, err := os.Stat(opts.Dir); err == nil {
			cmd.Dir = opts.Dir
		}
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, errors.SurfaceStartFailed(command, err)
	}

	s := &LocalSurface{
		id:     uuid.NewString(),
		cmd:    cmd,
		ptmx:   ptmx,
		title:  filepath.Base(command),
		dir:    cmd.Dir,
		engine: e,
		log:    logger.ComponentLogger("LocalSurface"),
	}

	go s.readLoop()
	go func() {
		cmd.Wait()
		s.mu.Lock()
		s.exited = true
		s.mu.Unlock()
		s.log.Debug("surface process exited", "surface_id", s.id, "command", command)
		if e.opts.OnExit != nil {
			e.opts.OnExit(s)
		}
	}()

	s.log.Debug("surface started", "surface_id", s.id, "command", command, "dir", cmd.Dir)
	return s, nil
}

// LocalSurface is one process on one PTY.
type LocalSurface struct {
	id     string
	cmd    *exec.Cmd
	ptmx   *os.File
	engine *LocalEngine
	log    *slog.Logger

	mu     sync.RWMutex
	title  string
	dir    string
	tail   []byte
	exited bool
	closed bool
}

// readLoop drains the PTY so the child never blocks on writes, keeps the
// output tail for copy actions, and tracks OSC title updates.
func (s *LocalSurface) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.consume(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (s *LocalSurface) consume(chunk []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tail = append(s.tail, chunk...)
	if len(s.tail) > tailSize {
		s.tail = s.tail[len(s.tail)-tailSize:]
	}
	if title, ok := scanOSCTitle(s.tail); ok {
		s.title = title
	}
}

// scanOSCTitle finds the last OSC 0/2 title sequence in data. The returned
// title is stripped of any remaining escape sequences.
func scanOSCTitle(data []byte) (string, bool) {
	text := string(data)
	start := strings.LastIndex(text, "\x1b]0;")
	if i := strings.LastIndex(text, "\x1b]2;"); i > start {
		start = i
	}
	if start == -1 {
		return "", false
	}
	rest := text[start+4:]
	end := strings.IndexAny(rest, "\x07\x1b")
	if end == -1 {
		return "", false
	}
	title := strings.TrimSpace(ansi.Strip(rest[:end]))
	if title == "" {
		return "", false
	}
	return title, true
}

func (s *LocalSurface) ID() string {
	return s.id
}

func (s *LocalSurface) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// WorkingDirectory reads the live process cwd when possible, falling back to
// the directory the surface was launched in.
func (s *LocalSurface) WorkingDirectory() string {
	if s.cmd.Process != nil {
		if path, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", s.cmd.Process.Pid)); err == nil {
			return path
		}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// NeedsConfirmQuit reports whether destruction should be confirmed. True only
// while the process is alive and confirmation is currently enabled.
func (s *LocalSurface) NeedsConfirmQuit() bool {
	if s.engine.opts.ConfirmClose == nil || !s.engine.opts.ConfirmClose() {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.exited && !s.closed
}

// Write sends input bytes to the process.
func (s *LocalSurface) Write(data []byte) (int, error) {
	return s.ptmx.Write(data)
}

func (s *LocalSurface) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return errors.E(errors.Op("engine.Resize"), errors.KindInvalid,
			fmt.Sprintf("grid %dx%d", cols, rows))
	}
	return pty.Setsize(s.ptmx, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
}

// PerformBindingAction executes the intents a local PTY surface can carry
// out itself. Window and chrome scoped intents report unsupported.
func (s *LocalSurface) PerformBindingAction(action BindingAction) error {
	switch action {
	case BindingReset:
		// RIS, full terminal reset.
		_, err := s.Write([]byte("\x1bc"))
		return err

	case BindingCloseSurface:
		return s.Close()

	case BindingCopyToClipboard:
		if s.engine.opts.CopyText == nil {
			return ErrActionUnsupported
		}
		s.mu.RLock()
		text := ansi.Strip(string(s.tail))
		s.mu.RUnlock()
		return s.engine.opts.CopyText(text)

	case BindingPasteFromClipboard:
		if s.engine.opts.PasteText == nil {
			return ErrActionUnsupported
		}
		text, err := s.engine.opts.PasteText()
		if err != nil {
			return err
		}
		_, err = s.Write([]byte(text))
		return err

	default:
		return ErrActionUnsupported
	}
}

// Close kills the process and releases the PTY. Idempotent.
func (s *LocalSurface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	s.log.Debug("surface closed", "surface_id", s.id)
	return s.ptmx.Close()
}
