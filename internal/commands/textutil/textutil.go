// Package textutil provides the text manipulation commands of the demo set.
package textutil

import (
	"strconv"
	"strings"

	"github.com/DimaEnotoff/friendlyclp/internal/argument"
)

// CountWords reports the number of whitespace-delimited words in its text.
type CountWords struct{}

func (CountWords) Aliases() []string   { return []string{"cw", "countwords"} }
func (CountWords) Description() string { return "Count words in the provided text" }

func (CountWords) Arguments() []argument.Def {
	return []argument.Def{
		argument.String(0, "text", "text to count words in", argument.Multisegmented()),
	}
}

func (CountWords) Execute(args *argument.Set) (string, error) {
	return strconv.Itoa(len(strings.Fields(args.String("text")))), nil
}

// RemoveChar deletes every occurrence of a character from a word. With the
// character omitted the word comes back unchanged.
type RemoveChar struct{}

func (RemoveChar) Aliases() []string   { return []string{"rc", "removechar"} }
func (RemoveChar) Description() string { return "Remove all occurrences of a character from a word" }

func (RemoveChar) Arguments() []argument.Def {
	return []argument.Def{
		argument.String(0, "word", "word to process"),
		argument.Char(1, "char", "character to remove", argument.Optional()),
	}
}

func (RemoveChar) Execute(args *argument.Set) (string, error) {
	word := args.String("word")
	if args.Omitted("char") {
		return word, nil
	}
	return strings.ReplaceAll(word, string(args.Char("char")), ""), nil
}

// Upper folds its text to upper case.
type Upper struct{}

func (Upper) Aliases() []string   { return []string{"up", "upper"} }
func (Upper) Description() string { return "Convert the provided text to upper case" }

func (Upper) Arguments() []argument.Def {
	return []argument.Def{
		argument.String(0, "text", "text to convert", argument.Multisegmented()),
	}
}

func (Upper) Execute(args *argument.Set) (string, error) {
	return strings.ToUpper(args.String("text")), nil
}
