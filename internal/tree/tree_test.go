package tree_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
	"github.com/DimaEnotoff/friendlyclp/internal/command"
	"github.com/DimaEnotoff/friendlyclp/internal/tree"
)

type stub struct {
	aliases     []string
	description string
}

func (s stub) Aliases() []string         { return s.aliases }
func (s stub) Description() string       { return s.description }
func (s stub) Arguments() []argument.Def { return nil }
func (s stub) Execute(args *argument.Set) (string, error) {
	return "", nil
}

func bind(t *testing.T, aliases []string, description string) *command.Bound {
	t.Helper()
	b, err := command.Bind(stub{aliases: aliases, description: description})
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	return b
}

func TestRender(t *testing.T) {
	root := tree.New("Top level commands:")
	grp1, err := root.AddGroup([]string{"grp1"}, "grp1 description")
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := grp1.AddCommand(bind(t, []string{"cmd1"}, "cmd1 description")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}
	if err := root.AddCommand(bind(t, []string{"cmd2"}, "cmd2 description")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	want := "Top level commands:\n" +
		"├──<grp1: grp1 description>\n" +
		"│  └──\"cmd1\" - cmd1 description\n" +
		"└──\"cmd2\" - cmd2 description"
	if got := root.Render(); got != want {
		t.Errorf("render mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderDedupsAliases(t *testing.T) {
	root := tree.New("root")
	grp, err := root.AddGroup([]string{"g", "grp"}, "a group")
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := grp.AddCommand(bind(t, []string{"c", "cmd"}, "a command")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	got := root.Render()
	if n := strings.Count(got, "<g|grp: a group>"); n != 1 {
		t.Errorf("group rendered %d times:\n%s", n, got)
	}
	if n := strings.Count(got, `"c|cmd" - a command`); n != 1 {
		t.Errorf("command rendered %d times:\n%s", n, got)
	}
}

func TestAliasCollisions(t *testing.T) {
	root := tree.New("root")
	if _, err := root.AddGroup([]string{"dup"}, "first group"); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := root.AddCommand(bind(t, []string{"taken"}, "first command")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	cases := []struct {
		name string
		do   func() error
	}{
		{"group over group", func() error {
			_, err := root.AddGroup([]string{"dup"}, "second group")
			return err
		}},
		{"group over command", func() error {
			_, err := root.AddGroup([]string{"taken"}, "second group")
			return err
		}},
		{"command over group", func() error {
			return root.AddCommand(bind(t, []string{"dup"}, "second command"))
		}},
		{"command over command", func() error {
			return root.AddCommand(bind(t, []string{"taken"}, "second command"))
		}},
		{"secondary alias collides", func() error {
			return root.AddCommand(bind(t, []string{"fresh", "dup"}, "second command"))
		}},
	}
	for _, tc := range cases {
		err := tc.do()
		if err == nil {
			t.Errorf("%s: expected a collision error", tc.name)
			continue
		}
		if !errors.Is(err, command.ErrConfiguration) {
			t.Errorf("%s: error %v does not wrap ErrConfiguration", tc.name, err)
		}
	}
}

func TestAddCommandIdempotent(t *testing.T) {
	root := tree.New("root")
	b := bind(t, []string{"cmd"}, "a command")
	if err := root.AddCommand(b); err != nil {
		t.Fatalf("first AddCommand failed: %v", err)
	}
	if err := root.AddCommand(b); err != nil {
		t.Fatalf("re-attaching the same command failed: %v", err)
	}
	if n := strings.Count(root.Render(), `"cmd"`); n != 1 {
		t.Errorf("command rendered %d times", n)
	}
}

func TestSameCommandUnderSeveralGroups(t *testing.T) {
	root := tree.New("root")
	g1, _ := root.AddGroup([]string{"one"}, "first")
	g2, _ := root.AddGroup([]string{"two"}, "second")
	b := bind(t, []string{"shared"}, "a command")
	if err := g1.AddCommand(b); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}
	if err := g2.AddCommand(b); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	var paths []string
	root.WalkCommands(func(path []string, cmd *command.Bound) {
		paths = append(paths, strings.Join(path, " "))
	})
	if len(paths) != 2 || paths[0] != "one shared" || paths[1] != "two shared" {
		t.Errorf("unexpected walk paths %v", paths)
	}
}

func TestSearch(t *testing.T) {
	root := tree.New("root")
	grp, _ := root.AddGroup([]string{"grp", "g"}, "a group")
	if err := grp.AddCommand(bind(t, []string{"cmd", "c"}, "a command")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	res := root.Search("GRP CMD Mixed Case ARGS")
	if res.Kind != tree.CommandFound {
		t.Fatalf("expected CommandFound got %v", res.Kind)
	}
	if res.Command.Name() != "cmd" {
		t.Errorf("resolved wrong command %q", res.Command.Name())
	}
	// Remainder keeps the user's casing and spacing.
	if res.Remainder != " Mixed Case ARGS" {
		t.Errorf("unexpected remainder %q", res.Remainder)
	}

	if res := root.Search("g c"); res.Kind != tree.CommandFound {
		t.Errorf("secondary aliases not resolved: %v", res.Kind)
	}

	res = root.Search("  grp  ")
	if res.Kind != tree.GroupFound || res.Group.Name() != "grp" {
		t.Errorf("expected the grp group, got %v", res)
	}

	if res := root.Search(""); res.Kind != tree.GroupFound || res.Group.Name() != "root" {
		t.Errorf("empty line must land on the root, got %v", res)
	}

	res = root.Search("grp nosuch")
	if res.Kind != tree.NothingFound {
		t.Errorf("unknown token inside a group must find nothing, got %v", res.Kind)
	}
	// The miss still reports where the walk stopped.
	if res.Group == nil || res.Group.Name() != "grp" {
		t.Errorf("miss inside grp reported group %v", res.Group)
	}
	res = root.Search("nosuch")
	if res.Kind != tree.NothingFound {
		t.Errorf("unknown root token must find nothing, got %v", res.Kind)
	}
	if res.Group == nil || len(res.Group.Aliases()) != 0 {
		t.Errorf("miss at the root reported group %v", res.Group)
	}
}

func TestRenderGroupsBeforeCommands(t *testing.T) {
	root := tree.New("root")
	if err := root.AddCommand(bind(t, []string{"zeta"}, "last")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}
	if _, err := root.AddGroup([]string{"mid"}, "middle"); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := root.AddCommand(bind(t, []string{"alpha"}, "first")); err != nil {
		t.Fatalf("AddCommand failed: %v", err)
	}

	want := "root\n" +
		"├──<mid: middle>\n" +
		"├──\"alpha\" - first\n" +
		"└──\"zeta\" - last"
	if got := root.Render(); got != want {
		t.Errorf("render mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}
