package dex

import "strings"

// versionLabels covers the version slugs whose display form title-casing
// cannot produce. Everything else falls through to TitleSlug.
var versionLabels = map[string]string{
	"firered":         "FireRed",
	"leafgreen":       "LeafGreen",
	"heartgold":       "HeartGold",
	"soulsilver":      "SoulSilver",
	"black-2":         "Black 2",
	"white-2":         "White 2",
	"lets-go-pikachu": "Let's Go Pikachu",
	"lets-go-eevee":   "Let's Go Eevee",
	"legends-arceus":  "Legends: Arceus",
	"xd":              "XD",
}

// VersionLabel maps a version slug to its human label.
func VersionLabel(slug string) string {
	if l, ok := versionLabels[slug]; ok {
		return l
	}
	return TitleSlug(slug)
}

// TitleSlug turns a catalog slug like "kanto-route-2" into "Kanto Route 2".
func TitleSlug(slug string) string {
	parts := strings.Split(slug, "-")
	out := parts[:0]
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
