package trigger

import "regexp"

// Compiled once at init and shared read-only; Matches runs on every inbound
// message so it must stay allocation-cheap.
var leetPattern = regexp.MustCompile(`(?i)(^|[^a-z])leet($|[^a-z])`)

// Matches reports whether text contains "leet" as a whole word,
// case-insensitive. A letter on either side disqualifies the token, so
// "leetcode" and "fleet" do not match while "1337-leet!" does.
func Matches(text string) bool {
	return leetPattern.MatchString(text)
}
