package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(names ...string) *model {
	return newModel(names, 1, time.Millisecond, zerolog.Nop())
}

func TestStepRunsJobsInOrder(t *testing.T) {
	m := testModel("a", "b")
	m.Update(tickMsg{})

	assert.Equal(t, "running", m.jobs[0].state())
	assert.Equal(t, "queued", m.jobs[1].state())

	for n := 0; n < 100; n++ {
		m.step()
	}
	assert.Equal(t, 2, m.finished())
	for _, j := range m.jobs {
		assert.Equal(t, 1.0, j.bar.Progress())
	}
}

func TestViewDrawsTable(t *testing.T) {
	m := testModel("fetch", "build")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m.step()

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "╔╣jobs╠"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "╣0/2╠╗"), lines[0])
	assert.Contains(t, lines[1], "job")
	assert.Contains(t, lines[1], "state")
	assert.Contains(t, lines[3], "fetch")
	assert.Contains(t, lines[3], "running")
	assert.Contains(t, lines[4], "queued")
	assert.Contains(t, lines[9], "q quit")
}

func TestKeys(t *testing.T) {
	m := testModel("a")
	for n := 0; n < 50; n++ {
		m.step()
	}
	require.Equal(t, 1, m.finished())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, "queued", m.jobs[0].state())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
