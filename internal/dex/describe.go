package dex

import "strings"

// FlavorCandidate is one language+version flavor text entry from the catalog.
type FlavorCandidate struct {
	Language string
	Version  string
	Text     string
}

// versionPreference orders versions most-recent-first for description picks.
var versionPreference = []string{
	"scarlet", "violet", "legends-arceus",
	"brilliant-diamond", "shining-pearl",
	"sword", "shield", "lets-go-pikachu", "lets-go-eevee",
	"ultra-sun", "ultra-moon", "sun", "moon",
	"omega-ruby", "alpha-sapphire", "x", "y",
	"black-2", "white-2", "black", "white",
	"heartgold", "soulsilver", "platinum", "diamond", "pearl",
	"firered", "leafgreen", "emerald", "ruby", "sapphire",
	"crystal", "gold", "silver", "yellow", "blue", "red",
}

// SelectDescription picks the flavor text to show for a species: English
// entries only, first hit in version preference order, otherwise the last
// English entry as served. Total; empty input yields "".
func SelectDescription(candidates []FlavorCandidate) string {
	var english []FlavorCandidate
	for _, c := range candidates {
		if c.Language == "en" {
			english = append(english, c)
		}
	}
	if len(english) == 0 {
		return ""
	}
	for _, v := range versionPreference {
		for _, c := range english {
			if c.Version == v {
				return cleanFlavor(c.Text)
			}
		}
	}
	return cleanFlavor(english[len(english)-1].Text)
}

// cleanFlavor collapses the \n and \f runs upstream embeds in flavor text.
func cleanFlavor(s string) string { return strings.Join(strings.Fields(s), " ") }
