package validation

import (
	validation "github.com/jellydator/validation"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// ValidateEntry checks that entry is structurally sound for the built-in
// algorithms and key managers. It does not contact any key service, so a
// valid entry may still fail to decrypt.
func ValidateEntry(entry biscuitDomain.Entry) error {
	needsKey := entry.Algorithm != biscuitDomain.None
	isKMS := entry.KeyManager == biscuitDomain.KMS
	isGoCloud := entry.KeyManager == biscuitDomain.GoCloud
	wrapsKey := isKMS || isGoCloud

	err := validation.ValidateStruct(&entry,
		validation.Field(&entry.Algorithm,
			validation.Required,
			validation.In(biscuitDomain.SecretBox, biscuitDomain.AESGCM256, biscuitDomain.None),
		),
		validation.Field(&entry.KeyManager,
			validation.When(needsKey, validation.Required),
			validation.In(biscuitDomain.KMS, biscuitDomain.GoCloud, biscuitDomain.Testing),
		),
		validation.Field(&entry.Ciphertext, EncodedBlob),
		validation.Field(&entry.KeyID,
			validation.When(needsKey && wrapsKey, validation.Required),
			validation.When(needsKey && isKMS, KMSKeyID),
			validation.When(needsKey && isGoCloud, KeeperURL),
		),
		validation.Field(&entry.KeyCiphertext,
			validation.When(needsKey && wrapsKey, validation.Required, EncodedBlob),
		),
	)
	return WrapValidationError(err)
}
