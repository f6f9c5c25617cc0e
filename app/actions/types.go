package actions

type Type string

const (
	PlayerJoin Type = "PLAYER_JOIN"

	PropertyBuy        Type = "PROPERTY_BUY"
	PropertyImprove    Type = "PROPERTY_IMPROVE"
	PropertyUnimprove  Type = "PROPERTY_UNIMPROVE"
	PropertyMortgage   Type = "PROPERTY_MORTGAGE"
	PropertyUnmortgage Type = "PROPERTY_UNMORTGAGE"

	PlayerPayRent  Type = "PAY_RENT"
	PlayerToBank   Type = "TRANSFER_TO_BANK"
	BankToPlayer   Type = "TRANSFER_FROM_BANK"
	PlayerToPlayer Type = "TRANSFER_TO_PLAYER"
	PlayerBankrupt Type = "CLAIM_BANKRUPTCY"

	AuctionStart   Type = "AUCTION_START"
	AuctionBid     Type = "AUCTION_BID"
	AuctionConcede Type = "AUCTION_CONCEDE"
	AuctionClose   Type = "AUCTION_CLOSE"

	TradeOffer   Type = "TRADE_OFFER"
	TradeDecline Type = "TRADE_DECLINE"
	TradeAccept  Type = "TRADE_ACCEPT"
)

// Notice categories.
const (
	NoticeGame     = "game"
	NoticePlayer   = "player"
	NoticeProperty = "property"
	NoticeAuction  = "auction"
	NoticeTrade    = "trade"
)
