package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/notation"
	"github.com/palemoky/hearts/internal/player"
	"github.com/palemoky/hearts/internal/table"
	"github.com/palemoky/hearts/internal/ui/common"
	"github.com/palemoky/hearts/internal/ui/view"
)

// botTickMsg 轮到机器人时定时触发
type botTickMsg struct{}

// Model 本地牌桌：人类座位通过输入框行动，其余座位由机器人按节拍出牌
type Model struct {
	table *table.Table
	human seat.Seat
	delay time.Duration
	log   *zap.Logger

	// UI dimensions
	width  int
	height int

	input   textinput.Model
	counter *player.CardCounter
	message string
	err     error

	showCounter bool
	showingHelp bool
}

// NewModel wraps t. human is the interactive seat, -1 to watch bots only.
func NewModel(t *table.Table, human seat.Seat, delay time.Duration, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "输入要出的牌, 例如 qs"
	input.CharLimit = 40
	input.Width = 30
	input.Focus()

	m := &Model{
		table:   t,
		human:   human,
		delay:   delay,
		log:     log,
		input:   input,
		counter: player.NewCardCounter(),
	}
	m.syncCounter()
	return m
}

// State returns the current game state.
func (m *Model) State() *game.GameState {
	return m.table.State()
}

// Err is the last rejected input or bot failure.
func (m *Model) Err() error {
	return m.err
}

// Message is the last applied action, for display.
func (m *Model) Message() string {
	return m.message
}

// ShowingHelp reports whether the rules overlay is open.
func (m *Model) ShowingHelp() bool {
	return m.showingHelp
}

// CardCounterEnabled reports whether the card counter panel is shown.
func (m *Model) CardCounterEnabled() bool {
	return m.showCounter
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleBot())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case botTickMsg:
		return m, m.stepBot()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.showCounter = !m.showCounter
			return m, nil
		case tea.KeyF1:
			m.showingHelp = !m.showingHelp
			return m, nil
		case tea.KeyEnter:
			if m.table.Done() {
				return m, tea.Quit
			}
			return m, m.submit(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.showingHelp {
		return view.RulesView(m.width, m.height)
	}
	g := m.table.State()
	if g.Phase == game.PhaseGameEnd {
		return view.GameOverView(g, m.human, m.width)
	}

	b := view.Board{
		State:   g,
		Human:   m.human,
		Input:   m.input.View(),
		Message: m.message,
		Err:     m.err,
		Width:   m.width,
		Height:  m.height,
	}
	if m.showCounter {
		b.Counter = m.counter
	}
	return view.GameView(b)
}

func (m *Model) humanTurn() bool {
	return m.human.Valid() && !m.table.Done() && m.table.State().Current == m.human
}

// scheduleBot 轮到机器人时在 delay 后触发下一步
func (m *Model) scheduleBot() tea.Cmd {
	if m.table.Done() || m.humanTurn() {
		return nil
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return botTickMsg{}
	})
}

func (m *Model) stepBot() tea.Cmd {
	if m.table.Done() || m.humanTurn() {
		return nil
	}
	current := m.table.State().Current
	a, err := m.table.Step(context.Background())
	if err != nil {
		m.err = err
		m.log.Error("bot step failed", zap.Stringer("seat", current), zap.Error(err))
		return nil
	}
	m.applied(current, a)
	return m.scheduleBot()
}

// submit 解析并提交人类玩家的输入
func (m *Model) submit(text string) tea.Cmd {
	if !m.humanTurn() {
		return nil
	}
	g := m.table.State()
	a, err := notation.ParseAction(text, g.Phase)
	if err != nil {
		m.err = err
		return nil
	}
	if err := m.table.Submit(context.Background(), a); err != nil {
		m.err = err
		return nil
	}
	m.input.Reset()
	m.applied(m.human, a)
	return m.scheduleBot()
}

func (m *Model) applied(s seat.Seat, a game.Action) {
	m.err = nil
	m.message = fmt.Sprintf("%s: %s", common.SeatName(s, m.human), notation.FormatAction(a))
	m.syncCounter()
}

// syncCounter 记牌器只统计人类座位看得到的牌
func (m *Model) syncCounter() {
	g := m.table.State()
	if m.human.Valid() {
		m.counter.Reset(g.Hand(m.human))
	} else {
		m.counter.Reset(nil)
	}
	for _, s := range seat.All {
		for _, won := range g.TricksWon(s) {
			m.counter.DeductCards(won.Cards())
		}
	}
	if tr, ok := g.CurrentTrick(); ok {
		m.counter.DeductCards(tr.Cards())
	}
}
