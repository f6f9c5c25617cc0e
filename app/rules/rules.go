package rules

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
)

// Default returns the legality rules for every restricted action type.
func Default() Registry {
	return Registry{
		actions.PlayerJoin: {
			tokenUnused,
			tokenKnown,
			bankCoversAmount,
		},
		actions.PropertyBuy: {
			playerExists,
			playerSolvent,
			propertyExists,
			amountNonNegative,
			propertyUnowned,
			propertyNotAuctioned,
			playerCoversAmount,
		},
		actions.PropertyImprove: {
			playerExists,
			playerSolvent,
			propertyExists,
			playerOwnsProperty,
			groupMonopoly,
			groupBuildable,
			propertyUnmortgaged,
			belowMaxBuildings,
			buildEvenly,
			housesAvailable,
			hotelsAvailable,
			playerCoversAmount,
		},
		actions.PropertyUnimprove: {
			playerExists,
			playerSolvent,
			propertyExists,
			playerOwnsProperty,
			propertyImproved,
			unbuildEvenly,
			housesAvailable,
			hotelsAvailable,
			bankCoversAmount,
		},
		actions.PropertyMortgage: {
			playerExists,
			playerSolvent,
			propertyExists,
			playerOwnsProperty,
			propertyUnmortgaged,
			groupUnimproved,
			bankCoversAmount,
		},
		actions.PropertyUnmortgage: {
			playerExists,
			playerSolvent,
			propertyExists,
			playerOwnsProperty,
			propertyMortgaged,
			playerCoversAmount,
		},
		actions.PlayerPayRent: {
			playerExists,
			propertyExists,
			propertyOwned,
			notOwnRent,
			playerCoversAmount,
		},
		actions.PlayerToBank: {
			playerExists,
			playerSolvent,
			amountPositive,
			playerCoversAmount,
		},
		actions.BankToPlayer: {
			playerExists,
			playerSolvent,
			amountPositive,
			bankCoversAmount,
		},
		actions.PlayerToPlayer: {
			playerExists,
			playerSolvent,
			otherExists,
			otherSolvent,
			otherNotPlayer,
			amountPositive,
			playerCoversAmount,
		},
		actions.PlayerBankrupt: {
			playerExists,
			playerSolvent,
			beneficiaryValid,
			holdingsUnimproved,
			holdingsMortgaged,
		},
		actions.AuctionStart: {
			playerExists,
			playerSolvent,
			auctionInactive,
			propertyExists,
			propertyUnowned,
		},
		actions.AuctionBid: {
			auctionActive,
			bidderCandidate,
			playerSolvent,
			bidderNotWinning,
			amountHigher,
			playerCoversAmount,
		},
		actions.AuctionConcede: {
			auctionActive,
			bidderCandidate,
			concederNotWinning,
		},
		actions.AuctionClose: {
			auctionActive,
			auctionPropertyUnowned,
			winnerCoversAmount,
		},
		actions.TradeOffer: {
			playerExists,
			playerSolvent,
			otherExists,
			otherSolvent,
			otherNotPlayer,
			tradeNotAuctioned,
			tradePropertiesOwned,
			playerCoversOffer,
		},
		actions.TradeDecline: {
			tradeExists,
		},
		actions.TradeAccept: {
			tradeExists,
			notOwnOffer,
			playerSolvent,
			otherSolvent,
			tradeNotAuctioned,
			tradePropertiesOwned,
			payerCoversTrade,
		},
	}
}

func has(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}

// players

var tokenUnused = Rule{"token-unused", func(c *Context) bool {
	_, taken := c.State.Players[c.Action.Player]
	return !taken
}}

var tokenKnown = Rule{"token-known", func(c *Context) bool {
	return len(c.Config.PlayerTokens) == 0 || has(c.Config.PlayerTokens, c.Action.Player)
}}

var playerExists = Rule{"player-exists", func(c *Context) bool {
	_, ok := c.State.Players[c.Action.Player]
	return ok
}}

var playerSolvent = Rule{"player-solvent", func(c *Context) bool {
	return !c.Player.Bankrupt
}}

var otherSolvent = Rule{"other-solvent", func(c *Context) bool {
	return !c.Other.Bankrupt
}}

var otherExists = Rule{"other-exists", func(c *Context) bool {
	_, ok := c.State.Players[c.Action.Other]
	return ok
}}

var otherNotPlayer = Rule{"other-not-player", func(c *Context) bool {
	return c.Action.Other != c.Action.Player
}}

var beneficiaryValid = Rule{"beneficiary-valid", func(c *Context) bool {
	if c.Action.Other == models.Bank {
		return true
	}
	_, ok := c.State.Players[c.Action.Other]
	return ok && c.Action.Other != c.Action.Player
}}

// money

var amountNonNegative = Rule{"amount-non-negative", func(c *Context) bool {
	return c.Action.Amount >= 0
}}

var amountPositive = Rule{"amount-positive", func(c *Context) bool {
	return c.Action.Amount > 0
}}

var playerCoversAmount = Rule{"player-covers-amount", func(c *Context) bool {
	return c.Player.Balance >= c.Action.Amount
}}

var bankCoversAmount = Rule{"bank-covers-amount", func(c *Context) bool {
	return c.State.Bank >= c.Action.Amount
}}

// properties

var propertyExists = Rule{"property-exists", func(c *Context) bool {
	_, ok := c.State.Properties.ByID[c.Action.Property]
	return ok
}}

var propertyUnowned = Rule{"property-unowned", func(c *Context) bool {
	return c.Property.Unowned()
}}

// The lot under the hammer stays with the bank until the auction closes.
var propertyNotAuctioned = Rule{"property-not-auctioned", func(c *Context) bool {
	return c.State.Auction == nil || c.State.Auction.Property != c.Action.Property
}}

var propertyOwned = Rule{"property-owned", func(c *Context) bool {
	return !c.Property.Unowned()
}}

var playerOwnsProperty = Rule{"player-owns-property", func(c *Context) bool {
	return c.Property.Owner == c.Action.Player
}}

var notOwnRent = Rule{"not-own-rent", func(c *Context) bool {
	return c.Property.Owner != c.Action.Player
}}

var propertyMortgaged = Rule{"property-mortgaged", func(c *Context) bool {
	return c.Property.Mortgaged
}}

var propertyUnmortgaged = Rule{"property-unmortgaged", func(c *Context) bool {
	return !c.Property.Mortgaged
}}

var groupMonopoly = Rule{"group-monopoly", func(c *Context) bool {
	for _, p := range c.Properties {
		if p.Owner == models.Bank || p.Owner != c.Property.Owner {
			return false
		}
	}
	return len(c.Properties) > 0
}}

var groupBuildable = Rule{"group-buildable", func(c *Context) bool {
	return c.Property.Group != models.GroupRailroad && c.Property.Group != models.GroupUtility
}}

var groupUnimproved = Rule{"group-unimproved", func(c *Context) bool {
	if c.Property.Buildings > 0 {
		return false
	}
	for _, p := range c.Properties {
		if p.Buildings > 0 {
			return false
		}
	}
	return true
}}

var belowMaxBuildings = Rule{"below-max-buildings", func(c *Context) bool {
	return c.Property.Buildings < models.MaxBuildings
}}

var propertyImproved = Rule{"property-improved", func(c *Context) bool {
	return c.Property.Buildings > 0
}}

var buildEvenly = Rule{"build-evenly", func(c *Context) bool {
	next := c.Property.Buildings + 1
	for _, p := range c.Properties {
		if p.ID != c.Property.ID && next-p.Buildings > 1 {
			return false
		}
	}
	return true
}}

var unbuildEvenly = Rule{"unbuild-evenly", func(c *Context) bool {
	next := c.Property.Buildings - 1
	for _, p := range c.Properties {
		if p.ID != c.Property.ID && p.Buildings-next > 1 {
			return false
		}
	}
	return true
}}

// Houses and Hotels are what the action takes from the shared inventory;
// negative values hand pieces back and always fit.
var housesAvailable = Rule{"houses-available", func(c *Context) bool {
	return c.Action.Houses <= 0 || c.State.Houses >= c.Action.Houses
}}

var hotelsAvailable = Rule{"hotels-available", func(c *Context) bool {
	return c.Action.Hotels <= 0 || c.State.Hotels >= c.Action.Hotels
}}

var holdingsUnimproved = Rule{"holdings-unimproved", func(c *Context) bool {
	for _, id := range c.Action.Properties {
		if c.State.Properties.ByID[id].Buildings > 0 {
			return false
		}
	}
	return true
}}

var holdingsMortgaged = Rule{"holdings-mortgaged", func(c *Context) bool {
	for _, id := range c.Action.Properties {
		if !c.State.Properties.ByID[id].Mortgaged {
			return false
		}
	}
	return true
}}

// auctions

var auctionInactive = Rule{"auction-inactive", func(c *Context) bool {
	return c.State.Auction == nil
}}

var auctionActive = Rule{"auction-active", func(c *Context) bool {
	return c.State.Auction != nil
}}

var bidderCandidate = Rule{"bidder-candidate", func(c *Context) bool {
	return has(c.State.Auction.Players, c.Action.Player)
}}

var bidderNotWinning = Rule{"bidder-not-winning", func(c *Context) bool {
	return c.State.Auction.Winning != c.Action.Player
}}

var concederNotWinning = Rule{"conceder-not-winning", func(c *Context) bool {
	return c.State.Auction.Winning != c.Action.Player
}}

var amountHigher = Rule{"amount-higher", func(c *Context) bool {
	return c.Action.Amount > c.State.Auction.Amount
}}

var auctionPropertyUnowned = Rule{"auction-property-unowned", func(c *Context) bool {
	if !c.State.Auction.HasWinner() {
		return true
	}
	p, ok := c.State.Properties.ByID[c.State.Auction.Property]
	return ok && p.Unowned()
}}

var winnerCoversAmount = Rule{"winner-covers-amount", func(c *Context) bool {
	if !c.State.Auction.HasWinner() {
		return true
	}
	return c.Player.Balance >= c.Action.Amount
}}

// trades

var tradeExists = Rule{"trade-exists", func(c *Context) bool {
	_, ok := c.State.Trades[c.Action.Trade]
	return ok
}}

var notOwnOffer = Rule{"not-own-offer", func(c *Context) bool {
	return c.Trade.From != c.Action.Player
}}

var tradeNotAuctioned = Rule{"trade-not-auctioned", func(c *Context) bool {
	return c.State.Auction == nil || !has(c.Action.Properties, c.State.Auction.Property)
}}

var tradePropertiesOwned = Rule{"trade-properties-owned", func(c *Context) bool {
	for _, id := range c.Action.Properties {
		p, ok := c.State.Properties.ByID[id]
		if !ok || (p.Owner != c.Action.Player && p.Owner != c.Action.Other) {
			return false
		}
	}
	return true
}}

var playerCoversOffer = Rule{"player-covers-offer", func(c *Context) bool {
	return c.Action.Amount <= 0 || c.Player.Balance >= c.Action.Amount
}}

// The offer amount flows from the offering player (Other) to the accepting
// player; a negative amount flows the other way.
var payerCoversTrade = Rule{"payer-covers-trade", func(c *Context) bool {
	if c.Action.Amount > 0 {
		return c.Other.Balance >= c.Action.Amount
	}
	return c.Player.Balance >= -c.Action.Amount
}}
