package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"github.com/DimaEnotoff/friendlyclp/internal/commands"
	"github.com/DimaEnotoff/friendlyclp/internal/engine"
)

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	e := engine.New("Available commands:")
	if err := commands.Install(e, slog.Default()); err != nil {
		fmt.Printf("Failed to register commands: %v\n", err)
		os.Exit(1)
	}

	tree, _ := e.GetHelp("")

	sections := ""
	e.WalkCommands(func(path string, help string) {
		sections += fmt.Sprintf("### %s\n```\n%s\n```\n\n", path, help)
	})

	data := map[string]string{
		"CommandTree":     tree,
		"CommandSections": sections,
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}
