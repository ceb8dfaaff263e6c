package nav

import (
	"strings"
	"testing"

	"github.com/42-short/council/internal/icon"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	home  = Entry{Label: "Home", Path: "/", Icon: icon.Home}
	team  = Entry{Label: "My Team", Path: "/about", Icon: icon.Info}
	rules = Entry{Label: "Rules", Path: "/rules", Icon: icon.Warning}
	chat  = Entry{Label: "Contact", Path: "/contact", Icon: icon.Message}
)

func activeAt(path string) ActiveFunc {
	return func(p string) bool { return p == path }
}

// permutations returns every ordering of entries.
func permutations(entries []Entry) [][]Entry {
	if len(entries) <= 1 {
		return [][]Entry{entries}
	}
	var perms [][]Entry
	for i := range entries {
		rest := make([]Entry, 0, len(entries)-1)
		rest = append(rest, entries[:i]...)
		rest = append(rest, entries[i+1:]...)
		for _, p := range permutations(rest) {
			perms = append(perms, append([]Entry{entries[i]}, p...))
		}
	}
	return perms
}

// assertInOrder asserts each label appears in s after the previous one.
func assertInOrder(t *testing.T, s string, entries []Entry) {
	t.Helper()

	s = ansi.Strip(s)
	last := -1
	for _, e := range entries {
		i := strings.Index(s, e.Label)
		require.GreaterOrEqual(t, i, 0, "%q not found in %q", e.Label, s)
		assert.Greater(t, i, last, "%q out of order in %q", e.Label, s)
		last = i
	}
}

func TestRender_Order(t *testing.T) {
	for _, perm := range permutations([]Entry{home, team, rules, chat}) {
		assertInOrder(t, RenderWide(perm, activeAt("/")), perm)

		_, panel := RenderNarrow(perm, activeAt("/"), Open, -1)
		assertInOrder(t, panel, perm)
	}
}

func TestRenderWide_Active(t *testing.T) {
	got := RenderWide([]Entry{home, team}, activeAt("/about"))

	assert.Equal(t, " Home  My Team", ansi.Strip(got))
	assert.Contains(t, got, renderLink(team, true))
	assert.Contains(t, got, renderLink(home, false))
	assert.NotContains(t, got, renderLink(home, true))
}

func TestRender_ExactlyOneActive(t *testing.T) {
	entries := []Entry{home, team, rules, chat}
	for _, current := range entries {
		active := activeAt(current.Path)

		wide := RenderWide(entries, active)
		_, panel := RenderNarrow(entries, active, Open, -1)
		for _, e := range entries {
			isCurrent := e.Path == current.Path
			assert.Equal(t, isCurrent, strings.Contains(wide, renderLink(e, true)), "wide: %s", e.Label)

			activeRow := rowStyle(true).Render(icon.Glyph(e.Icon) + "  " + e.Label)
			assert.Equal(t, isCurrent, strings.Contains(panel, activeRow), "narrow: %s", e.Label)
		}
	}
}

func TestRenderWide_NoActive(t *testing.T) {
	got := RenderWide([]Entry{home, team}, activeAt("/nowhere"))

	assert.NotContains(t, got, renderLink(home, true))
	assert.NotContains(t, got, renderLink(team, true))
}

func TestRenderNarrow(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		trigger, panel := RenderNarrow([]Entry{home, team}, activeAt("/"), Closed, -1)

		assert.Equal(t, " ☰  STUDENT COUNCIL", ansi.Strip(trigger))
		assert.Empty(t, panel)
	})

	t.Run("open", func(t *testing.T) {
		_, panel := RenderNarrow([]Entry{home, team}, activeAt("/"), Open, 1)

		lines := strings.Split(ansi.Strip(panel), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "STUDENT COUNCIL")
		assert.Contains(t, lines[2], "  ⌂  Home")
		assert.Contains(t, lines[3], "› ⓘ  My Team")
		for _, line := range lines {
			assert.Equal(t, PanelWidth, ansi.StringWidth(line))
		}
	})
}

func Test_linkStyle(t *testing.T) {
	assert.True(t, linkStyle(true).GetBold())
	assert.True(t, linkStyle(true).GetUnderline())
	assert.Equal(t, activeLinkStyle.GetForeground(), linkStyle(true).GetForeground())

	assert.False(t, linkStyle(false).GetBold())
	assert.False(t, linkStyle(false).GetUnderline())
}
