package response

import (
	"time"

	"globalpay_gateway/internal/domain/entities"
)

type TransactionResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	Amount          *int64    `json:"amount,omitempty"`
	Success         bool      `json:"success"`
	Kind            string    `json:"kind"`
	Message         string    `json:"message"`
	Authorization   string    `json:"authorization,omitempty"`
	Reference       string    `json:"reference,omitempty"`
	AVSResult       string    `json:"avs_result,omitempty"`
	CVVResult       string    `json:"cvv_result,omitempty"`
	ProviderMessage string    `json:"provider_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Response map[string]interface{} `json:"response,omitempty"`
}

type TransactionListResponse struct {
	Authorization string                `json:"authorization"`
	Transactions  []TransactionResponse `json:"transactions"`
}

type GatewayInfoResponse struct {
	DisplayName        string   `json:"display_name"`
	HomepageURL        string   `json:"homepage_url"`
	BaseURL            string   `json:"base_url"`
	SupportedCountries []string `json:"supported_countries"`
	DefaultCurrency    string   `json:"default_currency"`
	SupportedCardTypes []string `json:"supported_card_types"`
	MoneyFormat        string   `json:"money_format"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Success:         t.Success,
		Kind:            string(t.Kind),
		Message:         t.Message,
		Authorization:   t.Authorization,
		Reference:       t.Reference,
		AVSResult:       t.AVSResult,
		CVVResult:       t.CVVResult,
		ProviderMessage: t.ProviderMessage,
		CreatedAt:       t.CreatedAt,
		Response:        t.Response,
	}
}

func FromTransactions(authorization string, ts []entities.Transaction) TransactionListResponse {
	out := TransactionListResponse{
		Authorization: authorization,
		Transactions:  make([]TransactionResponse, 0, len(ts)),
	}
	for _, t := range ts {
		out.Transactions = append(out.Transactions, FromTransaction(t))
	}
	return out
}

func FromGatewayInfo(info entities.GatewayInfo) GatewayInfoResponse {
	return GatewayInfoResponse{
		DisplayName:        info.DisplayName,
		HomepageURL:        info.HomepageURL,
		BaseURL:            info.BaseURL,
		SupportedCountries: info.SupportedCountries,
		DefaultCurrency:    info.DefaultCurrency,
		SupportedCardTypes: info.SupportedCardTypes,
		MoneyFormat:        string(info.MoneyFormat),
	}
}
