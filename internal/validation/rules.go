// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/biscuit/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PromTextfile validates that a path can be picked up by the node exporter
// textfile collector, which only reads *.prom files.
var PromTextfile = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.HasSuffix(s, ".prom")
	},
	validation.NewError("validation_prom_textfile", "must end in .prom"),
)

// KMSKeyID validates an AWS KMS key reference: a key or alias ARN, an
// alias name or a bare key id.
var KMSKeyID = validation.NewStringRuleWithError(
	func(s string) bool {
		if strings.HasPrefix(s, "arn:") {
			return strings.HasPrefix(s, "arn:aws") && len(strings.Split(s, ":")) >= 6
		}
		return !strings.Contains(s, "://") && !strings.ContainsAny(s, " \t\n")
	},
	validation.NewError("validation_kms_key_id", "must be a KMS key ARN, alias or key id"),
)

// KeeperURL validates a gocloud secrets keeper URL such as awskms://... or base64key://...
var KeeperURL = validation.NewStringRuleWithError(
	func(s string) bool {
		scheme, rest, ok := strings.Cut(s, "://")
		return ok && scheme != "" && rest != ""
	},
	validation.NewError("validation_keeper_url", "must be a keeper URL (scheme://...)"),
)
