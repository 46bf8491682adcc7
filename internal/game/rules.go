package game

import (
	"sort"

	"hangman-party/internal/room"
	"hangman-party/internal/shared"
)

const (
	basePoints    = 100
	strikePenalty = 5
	minPoints     = 50
)

// CalculatePoints rewards later rounds and penalises the winner's strikes,
// never awarding less than minPoints.
func CalculatePoints(round, strikes int) int {
	return max(basePoints*round-strikePenalty*strikes, minPoints)
}

// TotalStrikes sums the strikes of every player except the current word
// setter. Always computed from the live room, never cached.
func TotalStrikes(r *room.Room) int {
	setterID := ""
	if ws := r.WordSetter(); ws != nil {
		setterID = ws.ID
	}
	total := 0
	for _, p := range r.Players {
		if p.ID == setterID {
			continue
		}
		total += p.Strikes
	}
	return total
}

// OutOfStrikes reports whether the guessers have used up the strikes
// allowed for the round.
func OutOfStrikes(r *room.Room) bool {
	return TotalStrikes(r) >= r.MaxStrikes
}

// Leaderboard orders players by score, keeping join order on ties.
func Leaderboard(players []*room.Player) []shared.LeaderboardEntry {
	sorted := make([]*room.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]shared.LeaderboardEntry, 0, len(sorted))
	for i, p := range sorted {
		out = append(out, shared.LeaderboardEntry{Rank: i + 1, PlayerView: p.View()})
	}
	return out
}

// Winner returns the highest scorer, the earliest joiner on ties, or nil
// for an empty room.
func Winner(players []*room.Player) *room.Player {
	if len(players) == 0 {
		return nil
	}
	best := players[0]
	for _, p := range players[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best
}
