package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	name    string
	width   int
	height  int
	inits   int
	updates []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	f.updates = append(f.updates, msg)
	return f, nil
}

func (f *fakeScreen) View() string { return f.name }

func (f *fakeScreen) SetSize(width, height int) {
	f.width = width
	f.height = height
}

func TestRouterPushPop(t *testing.T) {
	root := &fakeScreen{name: "root"}
	r := New(root)
	r.SetSize(100, 40)

	assert.Equal(t, 1, r.Depth())
	assert.False(t, r.CanGoBack())
	assert.Nil(t, r.Pop(), "root cannot be popped")
	assert.Equal(t, "root", r.View())

	help := &fakeScreen{name: "help"}
	r.Push(help)

	assert.Equal(t, 2, r.Depth())
	assert.True(t, r.CanGoBack())
	assert.Equal(t, "help", r.View())
	assert.Equal(t, 100, help.width)
	assert.Equal(t, 1, help.inits)

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, root, r.Current())
	assert.Equal(t, 1, root.inits, "root re-initialized after pop")
}

func TestRouterEscGoesBack(t *testing.T) {
	root := &fakeScreen{name: "root"}
	r := New(root)
	r.Push(&fakeScreen{name: "help"})

	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, r.Depth())

	// esc on the root is forwarded to the screen instead.
	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Len(t, root.updates, 1)
	assert.Equal(t, 1, r.Depth())
}

func TestRouterForwardsMessagesToCurrent(t *testing.T) {
	root := &fakeScreen{name: "root"}
	top := &fakeScreen{name: "top"}
	r := New(root)
	r.Push(top)

	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Len(t, top.updates, 1)
	assert.Empty(t, root.updates)

	_, _ = r.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, 90, top.width)
	assert.Equal(t, 30, top.height)
}

func TestRouterClearReturnsToRoot(t *testing.T) {
	root := &fakeScreen{name: "root"}
	r := New(root)
	r.SetSize(80, 24)
	r.Push(&fakeScreen{name: "a"})
	r.Push(&fakeScreen{name: "b"})

	assert.Equal(t, 3, r.Depth())
	assert.Equal(t, "b", r.View())

	r.Clear()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "root", r.View())
	assert.Equal(t, 80, root.width)
	assert.Nil(t, r.Clear())
}
