package entities

import "time"

// Transaction is the audit record written after every gateway call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (authorization-index): authorization
//
// Card data is never part of the record.
type Transaction struct {
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        *int64          `json:"amount,omitempty"`
	Authorization string          `json:"authorization,omitempty"`
	// Reference is the PNRef the request was sent against (refund/repeat sale).
	Reference string     `json:"reference,omitempty"`
	Success   bool       `json:"success"`
	Kind      ResultKind `json:"kind"`
	Message   string     `json:"message"`
	// ProviderMessage is the provider's own Message field, kept verbatim.
	ProviderMessage string    `json:"provider_message,omitempty"`
	AVSResult       string    `json:"avs_result,omitempty"`
	CVVResult       string    `json:"cvv_result,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Response map[string]interface{} `json:"response,omitempty"`
}
