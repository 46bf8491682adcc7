package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangman-party/internal/room"
)

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		round, strikes, want int
	}{
		{1, 0, 100},
		{1, 1, 95},
		{1, 10, 50},
		{1, 20, 50},
		{3, 0, 300},
		{3, 4, 280},
		{5, 6, 470},
		{0, 0, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculatePoints(tt.round, tt.strikes), "round=%d strikes=%d", tt.round, tt.strikes)
	}
}

func TestCalculatePoints_Floor(t *testing.T) {
	for round := 0; round <= 10; round++ {
		for strikes := 0; strikes <= 50; strikes++ {
			assert.GreaterOrEqual(t, CalculatePoints(round, strikes), 50)
		}
		if round > 0 {
			assert.Equal(t, 100*round, CalculatePoints(round, 0))
		}
	}
}

func threePlayerRoom() *room.Room {
	r := room.New("R", 5, 6)
	r.AddPlayer("a", "A", "")
	r.AddPlayer("b", "B", "")
	r.AddPlayer("c", "C", "")
	r.StartGame()
	return r
}

func TestTotalStrikes_ExcludesWordSetter(t *testing.T) {
	r := threePlayerRoom()
	r.Players[0].Strikes = 4 // word setter, should not count
	r.Players[1].Strikes = 2
	r.Players[2].Strikes = 1

	assert.Equal(t, 3, TotalStrikes(r))

	r.NextRound() // b becomes word setter
	r.Players[0].Strikes = 4
	r.Players[1].Strikes = 2
	r.Players[2].Strikes = 1
	assert.Equal(t, 5, TotalStrikes(r))
}

func TestOutOfStrikes(t *testing.T) {
	r := threePlayerRoom()
	r.Players[1].Strikes = 3
	r.Players[2].Strikes = 2
	assert.False(t, OutOfStrikes(r))

	r.Players[2].Strikes = 3
	assert.True(t, OutOfStrikes(r))
}

func TestLeaderboard_StableOnTies(t *testing.T) {
	r := threePlayerRoom()
	r.AddPlayer("d", "D", "")
	r.Players[0].Score = 100
	r.Players[1].Score = 300
	r.Players[2].Score = 100
	r.Players[3].Score = 300

	lb := Leaderboard(r.Players)

	require.Len(t, lb, 4)
	got := []string{lb[0].ID, lb[1].ID, lb[2].ID, lb[3].ID}
	assert.Equal(t, []string{"b", "d", "a", "c"}, got)
	for i, e := range lb {
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, "a", r.Players[0].ID, "input order must be untouched")
}

func TestWinner(t *testing.T) {
	assert.Nil(t, Winner(nil))

	r := threePlayerRoom()
	r.Players[1].Score = 200
	r.Players[2].Score = 200
	assert.Equal(t, "b", Winner(r.Players).ID)
}
