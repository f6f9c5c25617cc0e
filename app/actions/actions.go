// Package actions builds the action records dispatched to a game store.
// Building an action never reads state; fields that depend on state are
// deferred until dispatch.
package actions

import (
	"math"

	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/selectors"
)

// Notice declares the notice a successful action leaves behind.
type Notice struct {
	ID   Field[string]
	Type string
	// Meta names the resolved fields copied onto the notice.
	Meta []string
}

type Action struct {
	Type Type

	Player     Field[string]
	Other      Field[string]
	Name       Field[string]
	Property   Field[string]
	Properties Field[[]string]
	Players    Field[[]string]
	Trade      Field[string]
	Amount     Field[int]
	Houses     Field[int]
	Hotels     Field[int]

	Notice *Notice
}

func notice(id, typ string, meta ...string) *Notice {
	return &Notice{ID: Value(id), Type: typ, Meta: meta}
}

func round(v float64) int {
	return int(math.Round(v))
}

func property(id string, fn func(models.PropertyState, Source) int) Field[int] {
	return Deferred(func(src Source) int {
		p, _ := selectors.GetProperty(src.State, id)
		return fn(p, src)
	})
}

func Join(token, name string) Action {
	return Action{
		Type:   PlayerJoin,
		Player: Value(token),
		Name:   Value(name),
		Amount: Deferred(func(src Source) int { return src.Config.PlayerStart }),
		Notice: notice("notice.joined", NoticeGame, "player"),
	}
}

// BuyProperty buys id from the bank. A nil amount means the listed price.
func BuyProperty(token, id string, amount *int) Action {
	return Action{
		Type:     PropertyBuy,
		Player:   Value(token),
		Property: Value(id),
		Amount: Optional(amount).Or(property(id, func(p models.PropertyState, _ Source) int {
			return p.Price
		})),
		Notice: notice("notice.bought-property", NoticeProperty, "player", "property", "amount"),
	}
}

func ImproveProperty(token, id string) Action {
	return Action{
		Type:     PropertyImprove,
		Player:   Value(token),
		Property: Value(id),
		Amount: property(id, func(p models.PropertyState, _ Source) int {
			return p.Cost
		}),
		// a hotel swaps the four houses on the lot back into the bank
		Houses: property(id, func(p models.PropertyState, _ Source) int {
			if p.Buildings == models.MaxBuildings-1 {
				return -4
			}
			return 1
		}),
		Hotels: property(id, func(p models.PropertyState, _ Source) int {
			if p.Buildings == models.MaxBuildings-1 {
				return 1
			}
			return 0
		}),
		Notice: notice("notice.improved-property", NoticeProperty, "player", "property", "amount"),
	}
}

func UnimproveProperty(token, id string) Action {
	return Action{
		Type:     PropertyUnimprove,
		Player:   Value(token),
		Property: Value(id),
		Amount: property(id, func(p models.PropertyState, src Source) int {
			return round(float64(p.Cost) * src.Config.BuildingRate)
		}),
		Houses: property(id, func(p models.PropertyState, _ Source) int {
			if p.Buildings == models.MaxBuildings {
				return 4
			}
			return -1
		}),
		Hotels: property(id, func(p models.PropertyState, _ Source) int {
			if p.Buildings == models.MaxBuildings {
				return -1
			}
			return 0
		}),
		Notice: notice("notice.unimproved-property", NoticeProperty, "player", "property", "amount"),
	}
}

func MortgageProperty(token, id string) Action {
	return Action{
		Type:     PropertyMortgage,
		Player:   Value(token),
		Property: Value(id),
		Amount: property(id, func(p models.PropertyState, src Source) int {
			return round(float64(p.Price) * src.Config.MortgageRate)
		}),
		Notice: notice("notice.mortgaged-property", NoticeProperty, "player", "property", "amount"),
	}
}

func UnmortgageProperty(token, id string) Action {
	return Action{
		Type:     PropertyUnmortgage,
		Player:   Value(token),
		Property: Value(id),
		Amount: property(id, func(p models.PropertyState, src Source) int {
			return round(float64(p.Price) * src.Config.MortgageRate * (1 + src.Config.InterestRate))
		}),
		Notice: notice("notice.unmortgaged-property", NoticeProperty, "player", "property", "amount"),
	}
}

// PayRent pays the owner of id. A nil dice roll counts as the default
// utility multiplier of 2.
func PayRent(token, id string, dice *int) Action {
	roll := 2
	if dice != nil {
		roll = *dice
	}
	return Action{
		Type:     PlayerPayRent,
		Player:   Value(token),
		Property: Value(id),
		Other: Deferred(func(src Source) string {
			p, _ := selectors.GetProperty(src.State, id)
			return p.Owner
		}),
		Amount: property(id, func(p models.PropertyState, src Source) int {
			return selectors.Rent(src.State, p, roll)
		}),
		Notice: notice("notice.paid-rent", NoticePlayer, "player", "other", "property", "amount"),
	}
}

func TransferToBank(token string, amount int) Action {
	return Action{
		Type:   PlayerToBank,
		Player: Value(token),
		Amount: Value(amount),
		Notice: notice("notice.paid-bank", NoticePlayer, "player", "amount"),
	}
}

func TransferFromBank(token string, amount int) Action {
	return Action{
		Type:   BankToPlayer,
		Player: Value(token),
		Amount: Value(amount),
		Notice: notice("notice.received-bank", NoticePlayer, "player", "amount"),
	}
}

func TransferToPlayer(token, other string, amount int) Action {
	return Action{
		Type:   PlayerToPlayer,
		Player: Value(token),
		Other:  Value(other),
		Amount: Value(amount),
		Notice: notice("notice.paid-player", NoticePlayer, "player", "other", "amount"),
	}
}

// ClaimBankruptcy hands everything token holds to beneficiary, the bank
// when beneficiary is empty.
func ClaimBankruptcy(token, beneficiary string) Action {
	if beneficiary == "" {
		beneficiary = models.Bank
	}
	return Action{
		Type:   PlayerBankrupt,
		Player: Value(token),
		Other:  Value(beneficiary),
		Properties: Deferred(func(src Source) []string {
			return selectors.OwnedBy(src.State, token)
		}),
		Amount: Deferred(func(src Source) int {
			p, _ := selectors.GetPlayer(src.State, token)
			return p.Balance
		}),
		Notice: notice("notice.bankrupt", NoticePlayer, "player", "other"),
	}
}

func AuctionProperty(token, id string) Action {
	return Action{
		Type:     AuctionStart,
		Player:   Value(token),
		Property: Value(id),
		Players: Deferred(func(src Source) []string {
			return selectors.ActivePlayers(src.State)
		}),
		Notice: notice("notice.auction-started", NoticeAuction, "player", "property"),
	}
}

func auctionProperty() Field[string] {
	return Deferred(func(src Source) string {
		if src.State.Auction == nil {
			return ""
		}
		return src.State.Auction.Property
	})
}

func PlaceBid(token string, amount int) Action {
	return Action{
		Type:     AuctionBid,
		Player:   Value(token),
		Property: auctionProperty(),
		Amount:   Value(amount),
		Notice:   notice("notice.auction-bid", NoticeAuction, "player", "property", "amount"),
	}
}

func ConcedeAuction(token string) Action {
	return Action{
		Type:     AuctionConcede,
		Player:   Value(token),
		Property: auctionProperty(),
		Notice:   notice("notice.auction-conceded", NoticeAuction, "player", "property"),
	}
}

// CloseAuction settles the running auction. The paying player is the
// current winner, not whoever asked for the close.
func CloseAuction() Action {
	return Action{
		Type: AuctionClose,
		Player: Deferred(func(src Source) string {
			if src.State.Auction == nil {
				return ""
			}
			return src.State.Auction.Winning
		}),
		Property: auctionProperty(),
		Amount: Deferred(func(src Source) int {
			if src.State.Auction == nil || !src.State.Auction.HasWinner() {
				return 0
			}
			return src.State.Auction.Amount
		}),
		Notice: &Notice{
			ID: Deferred(func(src Source) string {
				if src.State.Auction != nil && src.State.Auction.HasWinner() {
					return "notice.auction-won"
				}
				return "notice.auction-cancelled"
			}),
			Type: NoticeAuction,
			Meta: []string{"player", "property", "amount"},
		},
	}
}

// MakeOffer proposes a trade to other. amount is what token pays; a
// negative amount asks other for money instead.
func MakeOffer(token, other string, properties []string, amount int) Action {
	return Action{
		Type:       TradeOffer,
		Player:     Value(token),
		Other:      Value(other),
		Trade:      Value(selectors.TradeID(token, other)),
		Properties: Value(properties),
		Amount:     Value(amount),
		Notice:     notice("notice.trade-offered", NoticeTrade, "player", "other", "trade"),
	}
}

// DeclineOffer drops the standing offer between token and other. The
// offering player may use it to withdraw their own offer.
func DeclineOffer(token, other string) Action {
	id := selectors.TradeID(token, other)
	return Action{
		Type:   TradeDecline,
		Player: Value(token),
		Other:  Value(other),
		Trade:  Value(id),
		Notice: &Notice{
			ID: Deferred(func(src Source) string {
				if src.State.Trades[id].From == token {
					return "notice.trade-withdrawn"
				}
				return "notice.trade-declined"
			}),
			Type: NoticeTrade,
			Meta: []string{"player", "other", "trade"},
		},
	}
}

// AcceptOffer takes the standing offer from other. The properties and
// amount are read from the offer itself.
func AcceptOffer(token, other string) Action {
	id := selectors.TradeID(token, other)
	return Action{
		Type:   TradeAccept,
		Player: Value(token),
		Other:  Value(other),
		Trade:  Value(id),
		Properties: Deferred(func(src Source) []string {
			return src.State.Trades[id].Properties
		}),
		Amount: Deferred(func(src Source) int {
			return src.State.Trades[id].Amount
		}),
		Notice: notice("notice.trade-accepted", NoticeTrade, "player", "other", "trade"),
	}
}
