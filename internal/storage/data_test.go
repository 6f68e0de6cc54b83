package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game"
	"github.com/palemoky/hearts/internal/game/card"
)

func TestFromState_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 2, 4, 5, 30, 60} {
		s, _ := playSome(t, 5, n)
		data := FromState(s)

		raw, err := json.Marshal(data)
		require.NoError(t, err)
		var decoded GameData
		require.NoError(t, json.Unmarshal(raw, &decoded))

		restored, err := decoded.ToState()
		require.NoError(t, err, "after %d actions", n)
		assert.Equal(t, data, FromState(restored))
		assert.Equal(t, game.ValidActions(s), game.ValidActions(restored))
	}
}

func TestFromState_PendingPasses(t *testing.T) {
	t.Parallel()

	s, _ := playSome(t, 9, 2)
	data := FromState(s)

	require.Len(t, data.PendingPasses, 4)
	assert.Len(t, data.PendingPasses[0], 3)
	assert.Len(t, data.PendingPasses[1], 3)
	assert.Nil(t, data.PendingPasses[2])
	assert.Nil(t, data.Trick, "no trick while passing")
}

func TestToState_Rejects(t *testing.T) {
	t.Parallel()

	base := func() *GameData {
		s, _ := playSome(t, 3, 10)
		return FromState(s)
	}

	tests := []struct {
		name   string
		modify func(d *GameData)
	}{
		{"unknown phase", func(d *GameData) { d.Phase = "bidding" }},
		{"three players", func(d *GameData) { d.Players = d.Players[:3] }},
		{"bad dealer", func(d *GameData) { d.Dealer = 7 }},
		{"bad current", func(d *GameData) { d.Current = -1 }},
		{"bad card", func(d *GameData) { d.Players[0].Hand[0] = "zz" }},
		{"duplicate card", func(d *GameData) { d.Players[0].Hand[0] = d.Players[1].Hand[0] }},
		{"missing card", func(d *GameData) { d.Players[2].Hand = d.Players[2].Hand[1:] }},
		{"bad trick seat", func(d *GameData) { d.Trick = &TrickData{Lead: 9} }},
		{"short pending pass", func(d *GameData) { d.PendingPasses[0] = []string{"2♣"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := base()
			tt.modify(d)
			_, err := d.ToState()
			assert.Error(t, err)
		})
	}
}

func TestFromState_NewGame(t *testing.T) {
	t.Parallel()

	data := FromState(game.NewGame(card.NewRand(1), "fresh"))
	assert.Equal(t, "fresh", data.ID)
	assert.Equal(t, "passing", data.Phase)
	for i, p := range data.Players {
		assert.Equal(t, i, p.Seat)
		assert.Len(t, p.Hand, 13)
		assert.Empty(t, p.TricksWon)
	}
}
