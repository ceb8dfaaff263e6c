package navigator

import (
	tea "github.com/charmbracelet/bubbletea"
)

// model cache: not so much for performance but to retain memory of user
// actions, e.g. a user may page through the carousel, navigate away, and
// later return to find the same card showing.
type cache struct {
	cache map[string]tea.Model
}

func newCache() *cache {
	return &cache{cache: make(map[string]tea.Model)}
}

func (c *cache) exists(path string) bool {
	_, ok := c.cache[path]
	return ok
}

func (c *cache) get(path string) tea.Model {
	return c.cache[path]
}

func (c *cache) put(path string, model tea.Model) {
	c.cache[path] = model
}

func (c *cache) updateAll(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(c.cache))
	for path := range c.cache {
		cmds = append(cmds, c.update(path, msg))
	}
	return cmds
}

func (c *cache) update(path string, msg tea.Msg) tea.Cmd {
	updated, cmd := c.cache[path].Update(msg)
	c.cache[path] = updated
	return cmd
}
