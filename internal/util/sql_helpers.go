package util

import "strings"

// LikeEscapeChar is the escape character used by ContainsPattern.
// Queries using the pattern must declare it with ESCAPE '\'.
const LikeEscapeChar = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a lower-cased LIKE pattern matching s as a literal
// substring. An empty s yields "%%", which matches every row.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
