package models

// Settings holds the global user preferences edited on the General tab.
type Settings struct {
	Fiat            string `yaml:"fiat" json:"fiat"`
	InactivityTimer int    `yaml:"inactivity_timer" json:"inactivity_timer"` // minutes
}

// FiatCurrencies lists the supported display currencies in cycling order.
var FiatCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}

// InactivityTimers lists the supported lock timeouts in minutes.
var InactivityTimers = []int{1, 3, 5, 10, 15, 30, 45, 60}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Fiat:            "USD",
		InactivityTimer: 3,
	}
}
