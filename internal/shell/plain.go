package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/DimaEnotoff/friendlyclp/internal/config"
)

// RunPlain serves lines from in and writes replies to out, one per line.
// Used when stdin is a pipe or the user asked for --plain.
func RunPlain(d *Dispatcher, cfg config.ShellConfig, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if isExit(line) {
			return nil
		}
		fmt.Fprintln(out, d.Dispatch(line))
	}
}
