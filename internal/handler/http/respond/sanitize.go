package respond

import "regexp"

// Patterns are applied in order; the more specific key formats come first.
var (
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9_-]{10,}`)
	apiKeyParamPattern  = regexp.MustCompile(`(?i)(api_?key=)[^&\s"]+`)
	urlPasswordPattern  = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks LLM API keys, apiKey query parameters and URL
// passwords in s.
func SanitizeString(s string) string {
	s = anthropicKeyPattern.ReplaceAllString(s, "sk-ant-****")
	s = openaiKeyPattern.ReplaceAllString(s, "sk-****")
	s = apiKeyParamPattern.ReplaceAllString(s, "${1}****")
	s = urlPasswordPattern.ReplaceAllString(s, "://$1:****@")
	return s
}
