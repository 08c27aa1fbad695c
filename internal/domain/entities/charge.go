package entities

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidChargeRequest = errors.New("invalid charge request")
	ErrMissingPaymentSource = errors.New("purchase requires a card or a customer reference")
	ErrMissingAuthorization = errors.New("authorization reference is required")
)

// TransactionType is the value sent as TransType.
type TransactionType string

const (
	TransactionTypeSale       TransactionType = "Sale"
	TransactionTypeReturn     TransactionType = "Return"
	TransactionTypeRepeatSale TransactionType = "RepeatSale"
)

// CreditCard carries the card data a Sale sends to the provider.
// Card numbers are never persisted nor logged.
type CreditCard struct {
	Number            string `json:"number" validate:"required"`
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	VerificationValue string `json:"verification_value,omitempty"`
	Name              string `json:"name,omitempty"`
}

// ExpDate renders month + last two digits of the year ("09" + "27").
// The century is not checked.
func (c CreditCard) ExpDate() string {
	year := strconv.Itoa(c.Year)
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return fmt.Sprintf("%02d%s", c.Month, year)
}

func (c CreditCard) HasVerificationValue() bool { return c.VerificationValue != "" }

func (c CreditCard) HasName() bool { return c.Name != "" }

// ChargeOptions holds the optional fields shared by every transaction type.
type ChargeOptions struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	MagData       string `json:"mag_data,omitempty"`
	// ExtData is sent verbatim as the ExtData field, e.g. <TrainingMode>T</TrainingMode>.
	// When set it takes precedence over ExtraData.
	ExtData string `json:"ext_data,omitempty"`
	// ExtraData is flattened as ExtData[key]=value; blank values are dropped.
	ExtraData map[string]string `json:"extra_data,omitempty"`
	// CustomerReference identifies a stored customer when a Sale has no card.
	CustomerReference string `json:"customer_reference,omitempty"`
}

// ChargeRequest is a validated, provider-agnostic transaction request.
// Build it through NewPurchaseRequest, NewRefundRequest, NewRepeatSaleRequest
// or NewRecurringRequest.
type ChargeRequest struct {
	Type          TransactionType `validate:"required,oneof=Sale Return RepeatSale"`
	Amount        *int64          `validate:"omitempty,min=0"`
	Card          *CreditCard
	Authorization string `validate:"required_unless=Type Sale"`
	Options       ChargeOptions
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewPurchaseRequest(amount int64, card *CreditCard, opts ChargeOptions) (ChargeRequest, error) {
	if card == nil && opts.CustomerReference == "" {
		return ChargeRequest{}, ErrMissingPaymentSource
	}
	r := ChargeRequest{
		Type:    TransactionTypeSale,
		Amount:  &amount,
		Card:    card,
		Options: opts,
	}
	if card == nil {
		r.Authorization = opts.CustomerReference
	}
	return r, r.validate()
}

func NewRefundRequest(amount int64, authorization string, opts ChargeOptions) (ChargeRequest, error) {
	r := ChargeRequest{
		Type:          TransactionTypeReturn,
		Amount:        &amount,
		Authorization: authorization,
		Options:       opts,
	}
	return r, r.validate()
}

func NewRepeatSaleRequest(amount int64, authorization string, opts ChargeOptions) (ChargeRequest, error) {
	r := ChargeRequest{
		Type:          TransactionTypeRepeatSale,
		Amount:        &amount,
		Authorization: authorization,
		Options:       opts,
	}
	return r, r.validate()
}

// NewRecurringRequest is a RepeatSale that keeps the amount of the stored reference.
func NewRecurringRequest(authorization string, opts ChargeOptions) (ChargeRequest, error) {
	r := ChargeRequest{
		Type:          TransactionTypeRepeatSale,
		Authorization: authorization,
		Options:       opts,
	}
	return r, r.validate()
}

func (r ChargeRequest) validate() error {
	if r.Type != TransactionTypeSale && r.Authorization == "" {
		return ErrMissingAuthorization
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChargeRequest, err)
	}
	return nil
}
