package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodedBlob(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{"empty", "", false},
		{"padded ciphertext", "aGVsbG8=", false},
		{"wrapped key", "AQIDAHhB+3Fz/w==", false},
		{"url safe alphabet", "AQIDAHhB-3Fz_w==", true},
		{"missing padding", "aGVsbG8", true},
		{"not base64", "not base64!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EncodedBlob.Validate(tt.input)
			if tt.shouldErr {
				assert.EqualError(t, err, "must be padded standard base64")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
