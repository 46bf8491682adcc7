package room

import "hangman-party/internal/shared"

type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SessionID    string `json:"-"`
	Score        int    `json:"score"`
	Strikes      int    `json:"strikes"`
	IsHost       bool   `json:"isHost"`
	IsWordSetter bool   `json:"isWordSetter"`
}

func NewPlayer(id, name, sessionID string) *Player {
	return &Player{ID: id, Name: name, SessionID: sessionID}
}

// AddScore ignores negative amounts so the score never decreases.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

func (p *Player) AddStrike() {
	p.Strikes++
}

func (p *Player) ResetStrikes() {
	p.Strikes = 0
}

func (p *Player) ResetForNewRound() {
	p.Strikes = 0
	p.IsWordSetter = false
}

func (p *Player) View() shared.PlayerView {
	return shared.PlayerView{
		ID:           p.ID,
		Name:         p.Name,
		Score:        p.Score,
		Strikes:      p.Strikes,
		IsHost:       p.IsHost,
		IsWordSetter: p.IsWordSetter,
	}
}
