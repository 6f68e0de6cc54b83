// Package table seats four players around one game and drives it with the
// engine: it asks the seat to move for a decision and applies it.
package table

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/seat"
	"github.com/palemoky/hearts/internal/player"
)

// maxRetries 决策被拒后重试次数，超过后使用第一个合法动作
const maxRetries = 3

var (
	ErrMaxActions = errors.New("action limit reached")
	ErrNoPlayer   = errors.New("no player in seat")
	ErrNoActions  = errors.New("no valid actions")
)

// Store records the game as it is played.
type Store interface {
	SaveState(ctx context.Context, s *game.GameState) error
	AppendAction(ctx context.Context, gameID string, a game.Action) error
}

// Table 一张牌桌
type Table struct {
	players    [seat.Count]player.Player
	state      *game.GameState
	rng        *rand.Rand
	log        *zap.Logger
	store      Store
	maxActions int
	actions    int
}

// Option configures a Table.
type Option func(*Table)

func WithStore(s Store) Option {
	return func(t *Table) { t.store = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(t *Table) { t.log = l }
}

// WithMaxActions stops Run after n applied actions; 0 means no limit.
func WithMaxActions(n int) Option {
	return func(t *Table) { t.maxActions = n }
}

// New seats players around state. A nil player marks a seat whose moves
// come from Submit. rng is handed to the engine for new deals.
func New(state *game.GameState, players [seat.Count]player.Player, rng *rand.Rand, opts ...Option) *Table {
	t := &Table{
		players: players,
		state:   state,
		rng:     rng,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With(zap.String("game_id", state.ID))
	return t
}

// State returns the current game state.
func (t *Table) State() *game.GameState {
	return t.state
}

// Player returns the player at s, nil for an interactive seat.
func (t *Table) Player(s seat.Seat) player.Player {
	return t.players[s]
}

// Actions is the number of actions applied so far.
func (t *Table) Actions() int {
	return t.actions
}

// Done reports whether the game has ended.
func (t *Table) Done() bool {
	return t.state.Phase == game.PhaseGameEnd
}

// Decide asks the player at s for an action in the current phase.
func (t *Table) Decide(s seat.Seat) (game.Action, error) {
	p := t.players[s]
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPlayer, s)
	}
	if o, ok := p.(player.Observer); ok {
		o.Observe(t.View(s))
	}

	g := t.state
	switch g.Phase {
	case game.PhasePassing:
		cards, err := p.PassCards(g.Hand(s))
		if err != nil {
			return nil, err
		}
		return game.SelectPass{Cards: cards}, nil
	case game.PhasePlaying:
		c, err := p.PlayCard(g.Hand(s), g.LegalPlays())
		if err != nil {
			return nil, err
		}
		return game.PlayCard{Card: c}, nil
	case game.PhaseRoundEnd:
		addToOthers := true
		if mc, ok := p.(player.MoonChooser); ok {
			addToOthers = mc.ChooseMoon(s, g.Scores())
		}
		return game.ChooseMoonOption{AddToOthers: addToOthers}, nil
	default:
		return nil, apperrors.ErrGameOver
	}
}

// View builds what seat s can see of the table.
func (t *Table) View(s seat.Seat) player.View {
	g := t.state
	v := player.View{
		Seat:          s,
		Round:         g.Round,
		PassDirection: g.PassDirection(),
		FirstTrick:    g.IsFirstTrick(),
		HeartsBroken:  g.HeartsBroken,
		Scores:        g.Scores(),
	}
	if tr, ok := g.CurrentTrick(); ok {
		v.Trick = tr
	}
	for _, id := range seat.All {
		for _, won := range g.TricksWon(id) {
			v.Played = append(v.Played, won.Cards()...)
		}
	}
	return v
}

// Step lets the current seat move. A decision the engine rejects is asked
// for again; after maxRetries the first valid action is played instead.
func (t *Table) Step(ctx context.Context) (game.Action, error) {
	if t.Done() {
		return nil, apperrors.ErrGameOver
	}
	current := t.state.Current
	if t.players[current] == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPlayer, current)
	}
	log := t.log.With(zap.Stringer("seat", current), zap.Int("round", t.state.Round))

	for attempt := 1; attempt <= maxRetries; attempt++ {
		a, err := t.Decide(current)
		if err != nil {
			log.Warn("decision failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		if err := t.Submit(ctx, a); err != nil {
			log.Warn("decision rejected", zap.Int("attempt", attempt), zap.Stringer("action", a), zap.Error(err))
			continue
		}
		return a, nil
	}

	valid := game.ValidActions(t.state)
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: phase %s, seat %s", ErrNoActions, t.state.Phase, current)
	}
	a := valid[0]
	log.Warn("falling back to first valid action", zap.Stringer("action", a))
	if err := t.Submit(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Submit applies a for the current seat and records it. On rejection the
// state is unchanged and the engine's error is returned.
func (t *Table) Submit(ctx context.Context, a game.Action) error {
	next, err := game.Apply(t.state, a, t.rng)
	if err != nil {
		return err
	}

	prev := t.state
	t.state = next
	t.actions++
	t.log.Debug("action applied",
		zap.Stringer("seat", prev.Current),
		zap.Stringer("action", a),
		zap.Stringer("phase", next.Phase),
	)
	if t.log.Core().Enabled(zap.DebugLevel) {
		if err := next.CheckCards(); err != nil {
			t.log.Error("card conservation broken", zap.Error(err))
		}
	}
	if next.Round != prev.Round || next.Phase == game.PhaseGameEnd {
		t.log.Info("round finished",
			zap.Int("round", prev.Round),
			zap.Ints("scores", scoresSlice(next)),
		)
	}

	if t.store != nil {
		if err := t.store.AppendAction(ctx, next.ID, a); err != nil {
			t.log.Error("append action failed", zap.Error(err))
		}
		if err := t.store.SaveState(ctx, next); err != nil {
			t.log.Error("save state failed", zap.Error(err))
		}
	}
	return nil
}

// Run plays until the game ends, ctx is done or the action limit is hit.
// It stops with ErrNoPlayer when an interactive seat is to move.
func (t *Table) Run(ctx context.Context) (*game.GameState, error) {
	for !t.Done() {
		if err := ctx.Err(); err != nil {
			return t.state, err
		}
		if t.maxActions > 0 && t.actions >= t.maxActions {
			return t.state, fmt.Errorf("%w: %d", ErrMaxActions, t.maxActions)
		}
		if _, err := t.Step(ctx); err != nil {
			return t.state, err
		}
	}

	t.log.Info("game over",
		zap.Ints("scores", scoresSlice(t.state)),
		zap.Int("actions", t.actions),
		zap.Any("winners", t.state.Winners()),
	)
	return t.state, nil
}

func scoresSlice(g *game.GameState) []int {
	scores := g.Scores()
	return scores[:]
}
