package entities

import (
	"fmt"
	"strconv"
)

// ResultKind separates a business decline from a response that could not be read.
type ResultKind string

const (
	ResultApproved    ResultKind = "approved"
	ResultDeclined    ResultKind = "declined"
	ResultUnparseable ResultKind = "unparseable"
	ResultUnreachable ResultKind = "unreachable"
)

// ProviderResponse is the provider payload as a nested tag -> value mapping.
// Leaves are strings, repeated tags become []any, nested elements map[string]any.
type ProviderResponse map[string]any

// String returns the leaf value at key, or "" when missing or not a leaf.
func (r ProviderResponse) String(key string) string {
	if r == nil {
		return ""
	}
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case map[string]any, []any:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Child returns the nested element at key, or nil.
func (r ProviderResponse) Child(key string) ProviderResponse {
	if r == nil {
		return nil
	}
	if m, ok := r[key].(map[string]any); ok {
		return ProviderResponse(m)
	}
	return nil
}

// GatewayResult is the normalized outcome of one provider call.
type GatewayResult struct {
	Success         bool             `json:"success"`
	Kind            ResultKind       `json:"kind"`
	Message         string           `json:"message"`
	Authorization   string           `json:"authorization,omitempty"`
	AVSResult       string           `json:"avs_result,omitempty"`
	CVVResult       string           `json:"cvv_result,omitempty"`
	ProviderMessage string           `json:"provider_message,omitempty"`
	Response        ProviderResponse `json:"response,omitempty"`
}
