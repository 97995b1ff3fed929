package respond

import "regexp"

var (
	// database password inside a DSN
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// bearer tokens from Authorization headers leaking into error text
	bearerTokenPattern = regexp.MustCompile(`Bearer [A-Za-z0-9._~+/-]+=*`)

	// AWS access key ids
	awsKeyPattern = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)
)

// SanitizeError returns the error message with credentials masked so it can
// be logged safely.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = awsKeyPattern.ReplaceAllString(msg, "AKIA****")

	return msg
}
