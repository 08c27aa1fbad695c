package entities

// GatewayInfo describes the provider a gateway talks to.
type GatewayInfo struct {
	DisplayName        string      `json:"display_name"`
	HomepageURL        string      `json:"homepage_url"`
	BaseURL            string      `json:"base_url"`
	SupportedCountries []string    `json:"supported_countries"`
	DefaultCurrency    string      `json:"default_currency"`
	SupportedCardTypes []string    `json:"supported_card_types"`
	MoneyFormat        MoneyFormat `json:"money_format"`
}
