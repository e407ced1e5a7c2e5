// internal/api/icons.go
package api

import "strings"

// iconRule сопоставляет ключевое слово в названии фильма с иконкой.
// Порядок правил фиксирован: побеждает первое совпадение.
type iconRule struct {
	keyword string
	icon    string
}

var iconRules = []iconRule{
	{"prison", "⛓️"},
	{"boss", "🕴️"},
	{"family", "👪"},
	{"space", "🚀"},
	{"dream", "💭"},
	{"war", "⚔️"},
	{"love", "❤️"},
	{"hero", "🦸"},
	{"comedy", "🎭"},
}

// movieIcon подбирает иконку для фильма по ключевым словам названия.
func movieIcon(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range iconRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.icon
		}
	}
	return "🎬"
}
