package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"harbour-market/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Tokens",
			input:  []byte(`{"accessToken":"eyJhbGciOiJFUzI1NiIsInR5cC","refreshToken":"eyJhbGciOiJFUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"accessToken":"[MASKED]","refreshToken":"[MASKED]"}`),
		},
		{
			name:   "Buyer profile",
			input:  []byte(`{"buyer": {"lastName": "Doe", "firstName": "John", "email": "john@doe.com"}, "amount": 50000}`),
			output: []byte(`{"buyer": {"lastName": "[MASKED]", "firstName": "[MASKED]", "email": "[MASKED]"}, "amount": 50000}`),
		},
		{
			name:   "Seller business account",
			input:  []byte(`{"companyEmail":"sales@acme.example","accountNumber":"0123456789"}`),
			output: []byte(`{"companyEmail":"[MASKED]","accountNumber":"[MASKED]"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
