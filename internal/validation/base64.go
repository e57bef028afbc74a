package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// EncodedBlob validates the ciphertext and key_ciphertext fields of an entry.
// Both are decoded with standard padded base64 at decrypt time, so URL-safe
// or unpadded text is rejected here rather than as a candidate failure.
// Empty values pass; pair it with Required where the field is mandatory.
var EncodedBlob = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_encoded_blob", "must be padded standard base64"),
)
