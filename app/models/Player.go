package models

type PlayerState struct {
	Name     string `json:"name"`
	Token    string `json:"token"`
	Balance  int    `json:"balance"`
	Bankrupt bool   `json:"bankrupt"`
}

type Players map[string]PlayerState

func (p Players) Clone() Players {
	out := make(Players, len(p))
	for token, player := range p {
		out[token] = player
	}
	return out
}
