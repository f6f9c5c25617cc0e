package room

import (
	"sort"

	"github.com/DedS3t/monopoly-backend/app/actions"
)

// Args is the payload a client sends with a game command. Which fields
// matter depends on the command.
type Args struct {
	Property   string   `json:"property"`
	Amount     *int     `json:"amount"`
	Dice       *int     `json:"dice"`
	Other      string   `json:"other"`
	Properties []string `json:"properties"`
}

func (a Args) amount() int {
	if a.Amount == nil {
		return 0
	}
	return *a.Amount
}

// Command builds the action a bound player asked for. token is always the
// caller's bound token.
type Command func(token string, a Args) actions.Action

var Commands = map[string]Command{
	"buy-property": func(token string, a Args) actions.Action {
		return actions.BuyProperty(token, a.Property, a.Amount)
	},
	"improve-property": func(token string, a Args) actions.Action {
		return actions.ImproveProperty(token, a.Property)
	},
	"unimprove-property": func(token string, a Args) actions.Action {
		return actions.UnimproveProperty(token, a.Property)
	},
	"mortgage-property": func(token string, a Args) actions.Action {
		return actions.MortgageProperty(token, a.Property)
	},
	"unmortgage-property": func(token string, a Args) actions.Action {
		return actions.UnmortgageProperty(token, a.Property)
	},
	"pay-rent": func(token string, a Args) actions.Action {
		return actions.PayRent(token, a.Property, a.Dice)
	},
	"transfer-to-bank": func(token string, a Args) actions.Action {
		return actions.TransferToBank(token, a.amount())
	},
	"transfer-from-bank": func(token string, a Args) actions.Action {
		return actions.TransferFromBank(token, a.amount())
	},
	"transfer-to-player": func(token string, a Args) actions.Action {
		return actions.TransferToPlayer(token, a.Other, a.amount())
	},
	"claim-bankruptcy": func(token string, a Args) actions.Action {
		return actions.ClaimBankruptcy(token, a.Other)
	},
	"auction-new": func(token string, a Args) actions.Action {
		return actions.AuctionProperty(token, a.Property)
	},
	"auction-bid": func(token string, a Args) actions.Action {
		return actions.PlaceBid(token, a.amount())
	},
	"auction-concede": func(token string, a Args) actions.Action {
		return actions.ConcedeAuction(token)
	},
	"auction-close": func(token string, a Args) actions.Action {
		return actions.CloseAuction()
	},
	"trade-new": func(token string, a Args) actions.Action {
		return actions.MakeOffer(token, a.Other, a.Properties, a.amount())
	},
	"trade-decline": func(token string, a Args) actions.Action {
		return actions.DeclineOffer(token, a.Other)
	},
	"trade-accept": func(token string, a Args) actions.Action {
		return actions.AcceptOffer(token, a.Other)
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
