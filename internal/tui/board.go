package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikecappella27/life-rpg/internal/engine"
)

// Persist is called after every state-changing interaction with the new
// snapshot. Best-effort; the board never blocks on it.
type Persist func(s *engine.SaveState)

func RunBoard(e *engine.Engine, persist Persist, tickInterval time.Duration, out io.Writer) error {
	m := newBoardModel(e, persist, tickInterval)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
