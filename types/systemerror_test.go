package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSystemError(t *testing.T) {
	cases := map[string]struct {
		input    error
		expected *SystemError
	}{
		"nil": {
			input:    nil,
			expected: nil,
		},
		"typed nil pointer": {
			input:    (*Unknown)(nil),
			expected: nil,
		},
		"plain error": {
			input:    errors.New("boom"),
			expected: nil,
		},
		"system error": {
			input:    SystemError{Unknown: &Unknown{}},
			expected: &SystemError{Unknown: &Unknown{}},
		},
		"variant value": {
			input:    UnsupportedRequest{Kind: "custom"},
			expected: &SystemError{UnsupportedRequest: &UnsupportedRequest{Kind: "custom"}},
		},
		"variant pointer": {
			input:    &NoSuchContract{Addr: "umee1xyz"},
			expected: &SystemError{NoSuchContract: &NoSuchContract{Addr: "umee1xyz"}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, ToSystemError(tc.input))
		})
	}
}

func TestSystemErrorMessage(t *testing.T) {
	err := SystemError{InvalidRequest: &InvalidRequest{Err: "unknown variant", Request: []byte(`{"x":{}}`)}}
	assert.Equal(t, `invalid request: unknown variant - original request: {"x":{}}`, err.Error())
	assert.Equal(t, "unknown system error variant", SystemError{}.Error())
}
