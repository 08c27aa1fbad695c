package request

import (
	"strings"

	"globalpay_gateway/internal/domain/entities"
)

// Amounts are integer minor units (cents); the gateway renders them in the
// configured money format.

type CardRequest struct {
	Number            string `json:"number" binding:"required"`
	Month             int    `json:"month" binding:"required,min=1,max=12"`
	Year              int    `json:"year" binding:"required"`
	VerificationValue string `json:"verification_value"`
	Name              string `json:"name"`
}

type OptionsRequest struct {
	InvoiceNumber     string            `json:"invoice_number"`
	MagData           string            `json:"mag_data"`
	ExtData           string            `json:"ext_data"`
	ExtraData         map[string]string `json:"extra_data"`
	CustomerReference string            `json:"customer_reference"`
}

// PurchaseRequest charges a card, or a stored customer when card is omitted
// and options.customer_reference is set.
type PurchaseRequest struct {
	Amount  *int64         `json:"amount" binding:"required,min=0"`
	Card    *CardRequest   `json:"card"`
	Options OptionsRequest `json:"options"`
}

// ReferenceRequest is shared by refund and repeat-sale: both act on a prior PNRef.
type ReferenceRequest struct {
	Amount        *int64         `json:"amount" binding:"required,min=0"`
	Authorization string         `json:"authorization" binding:"required"`
	Options       OptionsRequest `json:"options"`
}

type RecurringRequest struct {
	Authorization string         `json:"authorization" binding:"required"`
	Options       OptionsRequest `json:"options"`
}

func (r *CardRequest) ToEntity() *entities.CreditCard {
	if r == nil {
		return nil
	}
	return &entities.CreditCard{
		Number:            strings.TrimSpace(r.Number),
		Month:             r.Month,
		Year:              r.Year,
		VerificationValue: strings.TrimSpace(r.VerificationValue),
		Name:              strings.TrimSpace(r.Name),
	}
}

func (o OptionsRequest) ToEntity() entities.ChargeOptions {
	return entities.ChargeOptions{
		InvoiceNumber:     strings.TrimSpace(o.InvoiceNumber),
		MagData:           o.MagData,
		ExtData:           o.ExtData,
		ExtraData:         o.ExtraData,
		CustomerReference: strings.TrimSpace(o.CustomerReference),
	}
}

func (r ReferenceRequest) ResolveAuthorization() string {
	return strings.TrimSpace(r.Authorization)
}

func (r RecurringRequest) ResolveAuthorization() string {
	return strings.TrimSpace(r.Authorization)
}
