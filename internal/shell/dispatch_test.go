package shell_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DimaEnotoff/friendlyclp/internal/commands"
	"github.com/DimaEnotoff/friendlyclp/internal/config"
	"github.com/DimaEnotoff/friendlyclp/internal/engine"
	"github.com/DimaEnotoff/friendlyclp/internal/shell"
)

func newDispatcher(t *testing.T) (*shell.Dispatcher, *engine.Engine) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.New("Available commands:", engine.WithLogger(logger))
	if err := commands.Install(e, logger); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	return shell.NewDispatcher(e, time.Minute), e
}

func TestDispatchHelp(t *testing.T) {
	d, e := newDispatcher(t)

	wantTree, _ := e.GetHelp("")
	if got := d.Dispatch("help"); got != wantTree {
		t.Errorf("help reply mismatch\nwant:\n%s\ngot:\n%s", wantTree, got)
	}

	wantArticle, _ := e.GetHelp("tu rc")
	if got := d.Dispatch("help tu rc"); got != wantArticle {
		t.Errorf("article mismatch\nwant:\n%s\ngot:\n%s", wantArticle, got)
	}
	// Casing and spacing do not matter, cached or not.
	if got := d.Dispatch("  HELP   Tu   RC "); got != wantArticle {
		t.Errorf("case-folded article mismatch:\n%s", got)
	}

	if got := d.Dispatch("help nosuch"); got != shell.MsgHelpNotFound {
		t.Errorf("unknown help path replied %q", got)
	}
	if got := d.Dispatch("help tu rc extra"); got != shell.MsgHelpNotFound {
		t.Errorf("trailing text replied %q", got)
	}
}

func TestDispatchForwardsToEngine(t *testing.T) {
	d, _ := newDispatcher(t)

	if got := d.Dispatch("echo hi"); got != "hi" {
		t.Errorf("echo replied %q", got)
	}
	if got := d.Dispatch("xyz"); got != engine.MsgCommandNotFound {
		t.Errorf("unknown command replied %q", got)
	}
	// "helpful" is a command lookup, not a help request.
	if got := d.Dispatch("helpful"); got != engine.MsgCommandNotFound {
		t.Errorf("helpful replied %q", got)
	}
}

func TestRunPlain(t *testing.T) {
	d, _ := newDispatcher(t)
	cfg := config.Default().Shell

	in := strings.NewReader("echo hi\nexit\necho never\n")
	var out bytes.Buffer
	if err := shell.RunPlain(d, cfg, in, &out); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	if got := out.String(); got != "> hi\n> " {
		t.Errorf("unexpected transcript %q", got)
	}
}

func TestRunPlainStopsAtEOF(t *testing.T) {
	d, _ := newDispatcher(t)
	cfg := config.Default().Shell

	in := strings.NewReader("quit")
	var out bytes.Buffer
	if err := shell.RunPlain(d, cfg, in, &out); err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}

	in = strings.NewReader("")
	out.Reset()
	if err := shell.RunPlain(d, cfg, in, &out); err != nil {
		t.Fatalf("RunPlain on empty input failed: %v", err)
	}
	if got := out.String(); got != "> \n" {
		t.Errorf("unexpected transcript %q", got)
	}
}
