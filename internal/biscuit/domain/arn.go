package domain

import "strings"

const arnPrefix = "arn:"

// RegionFromARN returns the region component of an ARN shaped like
// arn:partition:service:region:account:resource.
//
// Any input carrying the arn: prefix yields its fourth colon-separated field,
// regardless of how many fields follow. Inputs without the prefix or too
// short to contain a region report false. It never panics.
func RegionFromARN(arn string) (string, bool) {
	if !strings.HasPrefix(arn, arnPrefix) {
		return "", false
	}
	parts := strings.Split(arn, ":")
	if len(parts) <= 3 {
		return "", false
	}
	return parts[3], true
}
