package indexer

import "strconv"

// extractTokens scans content for maximal runs of ASCII digits, optionally
// preceded by a single '-', and returns each run that parses as a signed
// 64-bit integer. The scan is deliberately lexical, not syntax-aware: "x-4"
// yields "-4", and runs too long for an i64 are skipped.
func extractTokens(content []byte) []string {
	var tokens []string

	i := 0
	for i < len(content) {
		c := content[i]
		if !isDigit(c) && c != '-' {
			i++
			continue
		}

		start := i
		if c == '-' {
			i++
		}
		for i < len(content) && isDigit(content[i]) {
			i++
		}

		token := string(content[start:i])
		if _, err := strconv.ParseInt(token, 10, 64); err == nil {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
