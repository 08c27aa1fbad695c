package payments

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"globalpay_gateway/internal/domain/entities"
)

var errEmptyDocument = errors.New("empty xml document")

const (
	// maxResponseBytes caps how much of a provider body is read.
	maxResponseBytes = 256 << 10
	// maxDiagnosticBytes caps the raw body quoted in a diagnostic message,
	// which ends up in logs and in the audit record.
	maxDiagnosticBytes = 2 << 10
)

// parseXML decodes an XML document into a nested map keyed by element name.
// Attributes and namespaces are ignored; leaf elements become strings and
// repeated siblings become a []any.
func parseXML(body []byte) (entities.ProviderResponse, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errEmptyDocument
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			v, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			return entities.ProviderResponse{start.Name.Local: v}, nil
		}
	}
}

func decodeElement(dec *xml.Decoder) (any, error) {
	var text strings.Builder
	var children map[string]any
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			v, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = map[string]any{}
			}
			addChild(children, t.Name.Local, v)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if children != nil {
				return children, nil
			}
			return strings.TrimSpace(text.String()), nil
		}
	}
}

func addChild(m map[string]any, name string, v any) {
	existing, ok := m[name]
	if !ok {
		m[name] = v
		return
	}
	if list, ok := existing.([]any); ok {
		m[name] = append(list, v)
		return
	}
	m[name] = []any{existing, v}
}

// parseEnvelope extracts the Response element of a provider document.
func parseEnvelope(body []byte) (entities.ProviderResponse, error) {
	doc, err := parseXML(body)
	if err != nil {
		return nil, err
	}
	resp := doc.Child("Response")
	if resp == nil {
		return nil, errors.New("missing Response element")
	}
	return resp, nil
}

// parseErrorBody interprets a non-2xx body: first as the provider envelope,
// then as a JSON object. The caller falls back to diagnosticResponse.
func parseErrorBody(body []byte) (entities.ProviderResponse, error) {
	if resp, err := parseEnvelope(body); err == nil {
		return resp, nil
	}
	var obj map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after json document")
	}
	if obj == nil {
		return nil, errors.New("empty json document")
	}
	return entities.ProviderResponse(obj), nil
}

func diagnosticMessage(raw string) string {
	raw = truncateBody(raw, maxDiagnosticBytes)
	msg := "Invalid response received from the Global Payments API."
	msg += fmt.Sprintf("  (The raw response returned by the API was \"%s\")", raw)
	return msg
}

// truncateBody cuts raw to at most limit bytes without splitting a rune.
func truncateBody(raw string, limit int) string {
	if len(raw) <= limit {
		return raw
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "...(truncated)"
}

func diagnosticResponse(raw string) entities.ProviderResponse {
	return entities.ProviderResponse{
		"error": map[string]any{
			"message": diagnosticMessage(raw),
		},
	}
}
