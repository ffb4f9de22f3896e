// Package shell hosts an engine interactively: an alternate-screen bubbletea
// UI for terminals and a plain line loop for pipes. The host intercepts the
// "help" and "exit"/"quit" words; everything else goes to the engine.
package shell

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/DimaEnotoff/friendlyclp/internal/engine"
)

// MsgHelpNotFound is shown when a help path resolves to nothing.
const MsgHelpNotFound = "Help article not found!"

// helpCacheCleanup is how often expired help articles are evicted.
const helpCacheCleanup = 5 * time.Minute

// Dispatcher routes input lines to the engine and serves help articles
// through a TTL cache, so repeated "help" requests skip re-rendering.
type Dispatcher struct {
	engine *engine.Engine
	help   *cache.Cache
}

// NewDispatcher wraps e with a help cache holding articles for ttl.
func NewDispatcher(e *engine.Engine, ttl time.Duration) *Dispatcher {
	return &Dispatcher{
		engine: e,
		help:   cache.New(ttl, helpCacheCleanup),
	}
}

// Dispatch handles one input line and returns the reply text.
func (d *Dispatcher) Dispatch(line string) string {
	fields := strings.Fields(line)
	if len(fields) > 0 && strings.ToLower(fields[0]) == "help" {
		return d.helpArticle(strings.Join(fields[1:], " "))
	}
	return d.engine.ProcessLine(line)
}

func (d *Dispatcher) helpArticle(path string) string {
	key := strings.ToLower(strings.Join(strings.Fields(path), " "))
	if v, ok := d.help.Get(key); ok {
		return v.(string)
	}
	article, ok := d.engine.GetHelp(path)
	if !ok {
		return MsgHelpNotFound
	}
	d.help.Set(key, article, cache.DefaultExpiration)
	return article
}

// isExit reports whether the line asks to leave the shell.
func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
