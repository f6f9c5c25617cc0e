package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

// bankSigns is the direction the action amount moves the bank balance.
var bankSigns = map[actions.Type]int{
	actions.PlayerJoin:         -1,
	actions.PropertyBuy:        1,
	actions.PropertyImprove:    1,
	actions.PropertyUnimprove:  -1,
	actions.PropertyMortgage:   -1,
	actions.PropertyUnmortgage: 1,
	actions.PlayerToBank:       1,
	actions.BankToPlayer:       -1,
	actions.AuctionClose:       1,
}

// inventorySigns applies to the Houses and Hotels fields, which count the
// pieces an action takes out of the shared inventory.
var inventorySigns = map[actions.Type]int{
	actions.PropertyImprove:   -1,
	actions.PropertyUnimprove: -1,
}

func Bank(bank int, a rules.Resolved) int {
	sign, ok := bankSigns[a.Type]
	if a.Type == actions.PlayerBankrupt && a.Other == models.Bank {
		sign, ok = 1, true
	}
	if !ok || bank == models.Unlimited {
		return bank
	}
	return bank + sign*a.Amount
}

func Houses(houses int, a rules.Resolved) int {
	if sign, ok := inventorySigns[a.Type]; ok {
		return houses + sign*a.Houses
	}
	return houses
}

func Hotels(hotels int, a rules.Resolved) int {
	if sign, ok := inventorySigns[a.Type]; ok {
		return hotels + sign*a.Hotels
	}
	return hotels
}
