package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

// playerSigns is the direction the action amount moves the acting player.
var playerSigns = map[actions.Type]int{
	actions.PropertyBuy:        -1,
	actions.PropertyImprove:    -1,
	actions.PropertyUnimprove:  1,
	actions.PropertyMortgage:   1,
	actions.PropertyUnmortgage: -1,
	actions.PlayerToBank:       -1,
	actions.BankToPlayer:       1,
	actions.AuctionClose:       -1,
}

func Players(players models.Players, a rules.Resolved) models.Players {
	switch a.Type {
	case actions.PlayerJoin:
		next := players.Clone()
		next[a.Player] = models.PlayerState{
			Name:    a.Name,
			Token:   a.Player,
			Balance: a.Amount,
		}
		return next

	case actions.PlayerPayRent, actions.PlayerToPlayer:
		return transfer(players, a.Player, a.Other, a.Amount)

	case actions.TradeAccept:
		// the offering player pays the accepting one
		return transfer(players, a.Other, a.Player, a.Amount)

	case actions.PlayerBankrupt:
		next := players.Clone()
		p := next[a.Player]
		p.Balance = 0
		p.Bankrupt = true
		next[a.Player] = p
		if other, ok := next[a.Other]; ok {
			other.Balance += a.Amount
			next[a.Other] = other
		}
		return next
	}

	sign, ok := playerSigns[a.Type]
	if !ok {
		return players
	}
	p, exists := players[a.Player]
	if !exists {
		return players
	}
	next := players.Clone()
	p.Balance += sign * a.Amount
	next[a.Player] = p
	return next
}

func transfer(players models.Players, from, to string, amount int) models.Players {
	next := players.Clone()
	if p, ok := next[from]; ok {
		p.Balance -= amount
		next[from] = p
	}
	if p, ok := next[to]; ok {
		p.Balance += amount
		next[to] = p
	}
	return next
}
