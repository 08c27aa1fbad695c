package payments

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<Response xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns="http://TPISoft.com/SmartPayments/">
  <Result>0</Result>
  <RespMSG>Approved</RespMSG>
  <PNRef>ABC123</PNRef>
  <GetAVSResult>Y</GetAVSResult>
  <GetCVResult>M</GetCVResult>
  <ExtData>
    <CardType>VISA</CardType>
  </ExtData>
</Response>`)

	resp, err := parseEnvelope(body)
	require.NoError(t, err)
	require.Equal(t, "0", resp.String("Result"))
	require.Equal(t, "ABC123", resp.String("PNRef"))
	require.Equal(t, "Y", resp.String("GetAVSResult"))
	require.Equal(t, "M", resp.String("GetCVResult"))
	require.Equal(t, "VISA", resp.Child("ExtData").String("CardType"))
	require.Equal(t, "", resp.String("ExtData"))
}

func TestParseXML_RepeatedElements(t *testing.T) {
	doc, err := parseXML([]byte(`<Root><Item>a</Item><Item>b</Item><Item>c</Item><Empty/></Root>`))
	require.NoError(t, err)

	root := doc.Child("Root")
	require.Equal(t, []any{"a", "b", "c"}, root["Item"])
	require.Equal(t, "", root.String("Empty"))
}

func TestParseEnvelope_Rejects(t *testing.T) {
	for _, body := range []string{"", "plain text", "<html>Error</html>", "<Response><Result>0</Result>"} {
		_, err := parseEnvelope([]byte(body))
		require.Error(t, err, "body %q", body)
	}
}

func TestParseErrorBody(t *testing.T) {
	resp, err := parseErrorBody([]byte(`<Response><Result>23</Result><RespMSG>Invalid Account Number</RespMSG></Response>`))
	require.NoError(t, err)
	require.Equal(t, "Invalid Account Number", resp.String("RespMSG"))

	resp, err = parseErrorBody([]byte(`{"RespMSG":"Service unavailable","Result":"-100"}`))
	require.NoError(t, err)
	require.Equal(t, "Service unavailable", resp.String("RespMSG"))

	resp, err = parseErrorBody([]byte(`{"Result":23,"RespMSG":"Invalid","PNRef":12345678,"GetAVSResult":1.5}`))
	require.NoError(t, err)
	require.Equal(t, "23", resp.String("Result"))
	require.Equal(t, "12345678", resp.String("PNRef"))
	require.Equal(t, "1.5", resp.String("GetAVSResult"))

	_, err = parseErrorBody([]byte(`<html>Error</html>`))
	require.Error(t, err)

	_, err = parseErrorBody([]byte(`null`))
	require.Error(t, err)
}

func TestDiagnosticResponse(t *testing.T) {
	resp := diagnosticResponse("<html>Error</html>")
	require.Equal(t,
		`Invalid response received from the Global Payments API.  (The raw response returned by the API was "<html>Error</html>")`,
		resp.Child("error").String("message"),
	)
}

func TestDiagnosticResponse_TruncatesLargeBodies(t *testing.T) {
	raw := strings.Repeat("x", maxDiagnosticBytes-1) + "é" + strings.Repeat("y", 10_000)
	msg := diagnosticResponse(raw).Child("error").String("message")

	require.Contains(t, msg, "...(truncated)")
	require.NotContains(t, msg, "yyy")
	require.True(t, utf8.ValidString(msg))
	require.Less(t, len(msg), maxDiagnosticBytes+200)
}
