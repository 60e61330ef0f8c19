// Package tui provides the interactive board generation session.
package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbesoto/life/internal/config"
	"github.com/jbesoto/life/internal/grid"
	"github.com/jbesoto/life/internal/render"
	"github.com/jbesoto/life/internal/storage"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// probStep is how far +/- move the alive probability.
const probStep = 0.01

type model struct {
	cfg    *config.Config
	store  *storage.Store
	board  *grid.Grid
	seed   int64
	status string
	err    error
}

// NewSession builds the interactive model with a freshly generated
// board.
func NewSession(cfg *config.Config, store *storage.Store) (tea.Model, error) {
	m := model{cfg: cfg, store: store, seed: cfg.Seed}
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	if err := m.regenerate(m.seed); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) regenerate(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	g, err := grid.Generate(rng, m.cfg.Rows, m.cfg.Cols, m.cfg.Probability)
	if err != nil {
		return err
	}
	m.seed = seed
	m.board = g
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.err = m.regenerate(time.Now().UnixNano())
		m.status = fmt.Sprintf("regenerated (seed %d)", m.seed)

	case "+", "=":
		if m.cfg.Probability+probStep <= 1 {
			m.cfg.Probability += probStep
			m.err = m.regenerate(m.seed)
			m.status = fmt.Sprintf("probability %.2f", m.cfg.Probability)
		}

	case "-":
		if m.cfg.Probability-probStep >= 0 {
			m.cfg.Probability -= probStep
			m.err = m.regenerate(m.seed)
			m.status = fmt.Sprintf("probability %.2f", m.cfg.Probability)
		}

	case "s":
		if err := grid.WriteFile(m.cfg.Output, m.board); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.status = "wrote " + m.cfg.Output
		}

	case "a":
		if m.store == nil {
			break
		}
		id, err := m.store.Save(m.board, m.cfg.Probability, m.seed, m.cfg.Pattern)
		if err != nil {
			m.err = err
		} else {
			m.err = nil
			m.status = "archived " + id
		}
	}

	return m, nil
}

func (m model) View() string {
	header := render.Title.Render(fmt.Sprintf("life %dx%d", m.cfg.Rows, m.cfg.Cols))
	info := dim.Render(fmt.Sprintf("p=%.2f seed=%d alive=%d", m.cfg.Probability, m.seed, m.board.AliveCount()))

	status := ""
	if m.err != nil {
		status = yellow.Render("error: " + m.err.Error())
	} else if m.status != "" {
		status = green.Render(m.status)
	}

	help := dim.Render("r regenerate  +/- probability  s write  a archive  q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		info,
		render.Board(m.board),
		status,
		help,
	)
}
