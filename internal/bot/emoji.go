package bot

import (
	"regexp"
	"strings"
)

var customEmojiPattern = regexp.MustCompile(`^<a?:(\w+):(\d+)>$`)

// resolveEmoji turns user input into the stable reference stored in a setup
// and used with the reaction API: a unicode emoji as-is, or "name:id" for a
// custom emoji belonging to the guild.
func (b *Bot) resolveEmoji(guildID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	if match := customEmojiPattern.FindStringSubmatch(input); match != nil {
		return match[1] + ":" + match[2], true
	}

	if isUnicodeEmoji(input) {
		return input, true
	}

	name := strings.Trim(input, ":")
	emojis, err := b.session.GuildEmojis(guildID)
	if err != nil {
		return "", false
	}
	for _, emoji := range emojis {
		if emoji != nil && emoji.Name == name {
			return emoji.Name + ":" + emoji.ID, true
		}
	}
	return "", false
}

// isUnicodeEmoji accepts only sequences built from emoji code points (plus
// the joiners and selectors that compose them), so a non-emoji string fails
// at setup time instead of at the first reaction call.
func isUnicodeEmoji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isEmojiRune(r) {
			return false
		}
	}
	return true
}

func isEmojiRune(r rune) bool {
	switch {
	case r == 0x200D: // zero-width joiner
		return true
	case r == 0x20E3: // combining keycap
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0x00A9 || r == 0x00AE: // copyright, registered
		return true
	case r == 0x2122 || r == 0x2139: // trademark, information
		return true
	case r >= 0x2190 && r <= 0x2BFF: // arrows, symbols, dingbats
		return true
	case r == 0x3030 || r == 0x303D || r == 0x3297 || r == 0x3299: // CJK symbols used as emoji
		return true
	case r >= 0x1F000 && r <= 0x1FAFF: // emoji planes incl. flags and skin tones
		return true
	default:
		return false
	}
}

// displayEmoji renders a stored reference back into chat markup.
func displayEmoji(ref string) string {
	if strings.Contains(ref, ":") {
		return "<:" + ref + ">"
	}
	return ref
}
