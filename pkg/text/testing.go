package text

import "strings"

// UnescapeTestContent replaces the ‛ and ” characters by backticks.
//
// Raw string literals cannot contain backticks, which makes fenced code
// blocks and code spans hard to write in test fixtures.
//
// Example: "‛‛‛go" becomes "```go".
func UnescapeTestContent(content string) string {
	return strings.NewReplacer("‛", "`", "”", "`").Replace(content)
}
