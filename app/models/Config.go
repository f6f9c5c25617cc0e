package models

import (
	"strconv"
	"time"
)

// Config holds the per-session economy settings. The env tags let the
// process override the defaults new sessions are created with.
type Config struct {
	PlayerStart  int      `json:"playerStart" env:"GAME_PLAYER_START"`
	BankStart    int      `json:"bankStart" env:"GAME_BANK_START"`
	HouseCount   int      `json:"houseCount" env:"GAME_HOUSE_COUNT"`
	HotelCount   int      `json:"hotelCount" env:"GAME_HOTEL_COUNT"`
	MortgageRate float64  `json:"mortgageRate" env:"GAME_MORTGAGE_RATE"`
	InterestRate float64  `json:"interestRate" env:"GAME_INTEREST_RATE"`
	BuildingRate float64  `json:"buildingRate" env:"GAME_BUILDING_RATE"`
	PollTimeout  Duration `json:"pollTimeout" env:"GAME_POLL_TIMEOUT"`
	PlayerTokens []string `json:"playerTokens" env:"GAME_PLAYER_TOKENS" envSeparator:","`
}

func DefaultConfig() Config {
	return Config{
		PlayerStart:  1500,
		BankStart:    20580,
		HouseCount:   32,
		HotelCount:   12,
		MortgageRate: 0.5,
		InterestRate: 0.1,
		BuildingRate: 0.5,
		PollTimeout:  Duration(30 * time.Second),
		PlayerTokens: []string{
			"top-hat", "thimble", "iron", "boot", "battleship",
			"cannon", "race-car", "purse", "lantern", "wheelbarrow",
		},
	}
}

// Duration is a time.Duration stored as milliseconds in JSON.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Duration(d).Milliseconds(), 10)), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// UnmarshalText accepts Go duration strings such as "45s".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
