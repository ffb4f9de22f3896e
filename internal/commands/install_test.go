package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DimaEnotoff/friendlyclp/internal/commands"
	"github.com/DimaEnotoff/friendlyclp/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := engine.New("Available commands:", engine.WithLogger(logger))
	if err := commands.Install(e, logger); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	return e
}

func TestDemoCommands(t *testing.T) {
	e := newEngine(t)

	cases := []struct {
		line string
		want string
	}{
		{"tu cw the bird is the word", "5"},
		{"TU CW The Bird", "2"},
		{"text countwords one", "1"},
		{"tu up shout", "SHOUT"},
		{"rc abracadabra", "abracadabra"},
		{"tu rc abracadabra a", "brcdbr"},
		{"removechar abracadabra b", "aracadara"},

		{"calc add 1 2", "3"},
		{"c a 1 2", "3"},
		{"calc add 1", `Argument "y" is missing!`},
		{"calc add 1 2 3", "Too many arguments!"},
		{"div 10 2", "5"},
		{"calc div 10 2", "5"},
		{"div 10 0", `Error validating argument "divisor". Division by zero is not allowed.`},
		{"div ten 2", `Error parsing argument "dividend". Numeric value expected.`},
		{"calc sum", "0"},
		{"calc sum 1 2 3", "6"},
		{"calc sum 1 two", `Error parsing argument "numbers". Numeric value expected (element 2).`},
		{"calc sqrt 9", "3"},
		{"calc sqrt -4", `Error validating argument "x". Negative value is not allowed.`},

		{"echo", "nothing to echo"},
		{"e hi there", "hi there"},
		{"echo  hello  world", "hello  world"},
		{"when 2000-01-01", "Saturday"},
		{"when 2024-02-29", "Thursday"},
		{"when someday", `Error parsing argument "date". Date in YYYY-MM-DD format expected.`},

		{"acl set allowed", "access allowed"},
		{"acl set F", "access forbidden"},
		{"acl confirm y", "confirmed"},
		{"acl confirm NO", "declined"},
		{"acl toggle true", "enabled"},
		{"acl toggle FALSE", "disabled"},
		{"acl toggle allowed", `Error parsing argument "state". "true"/"t" or "false"/"f" expected.`},

		{"", engine.MsgEnterCommand},
		{"xyz", engine.MsgCommandNotFound},
		{"tu", `Please specify a command within the "tu" group!`},
		{"calc xyz", `Please specify a command within the "calc" group!`},
	}
	for _, tc := range cases {
		if got := e.ProcessLine(tc.line); got != tc.want {
			t.Errorf("ProcessLine(%q) = %q, want %q", tc.line, got, tc.want)
		}
	}
}

func TestDemoTree(t *testing.T) {
	e := newEngine(t)

	got, ok := e.GetHelp("")
	if !ok {
		t.Fatal("root help not found")
	}
	want := "Available commands:\n" +
		"├──<acl: Access control demo>\n" +
		"│  ├──\"confirm\" - Confirm or decline the pending action\n" +
		"│  ├──\"set\" - Set the demo access flag\n" +
		"│  └──\"toggle\" - Toggle the demo switch\n" +
		"├──<calc|c: Calculator>\n" +
		"│  ├──\"add|a\" - Add two integers\n" +
		"│  ├──\"div|d\" - Divide one integer by another\n" +
		"│  ├──\"sum|s\" - Sum any number of integers\n" +
		"│  └──\"sqrt\" - Square root of a non-negative integer\n" +
		"├──<tu|text: Text utilities>\n" +
		"│  ├──\"cw|countwords\" - Count words in the provided text\n" +
		"│  ├──\"rc|removechar\" - Remove all occurrences of a character from a word\n" +
		"│  └──\"up|upper\" - Convert the provided text to upper case\n" +
		"├──\"div|d\" - Divide one integer by another\n" +
		"├──\"echo|e\" - Echo the provided text back\n" +
		"├──\"rc|removechar\" - Remove all occurrences of a character from a word\n" +
		"└──\"when|w\" - Show the weekday of a date"
	if got != want {
		t.Errorf("tree mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestSharedBindingHelp(t *testing.T) {
	e := newEngine(t)

	atRoot, ok := e.GetHelp("rc")
	if !ok {
		t.Fatal("rc help not found at root")
	}
	inGroup, ok := e.GetHelp("tu rc")
	if !ok {
		t.Fatal("rc help not found under tu")
	}
	if atRoot != inGroup {
		t.Error("same binding produced different articles")
	}

	want := "Command: rc|removechar\n" +
		"Description: Remove all occurrences of a character from a word\n" +
		"Usage: rc|removechar word [char]\n" +
		"   Arguments:\n" +
		"      word: word to process\n" +
		"      char: character to remove (optional)"
	if atRoot != want {
		t.Errorf("article mismatch\nwant:\n%s\ngot:\n%s", want, atRoot)
	}
}
