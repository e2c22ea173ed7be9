// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import "strings"

// =============================================================================
// AGENT BADGES
// =============================================================================

// AgentBadge is the render-ready descriptor for one agent identifier.
// StyleClass is a logical name the view layer maps to a concrete style.
type AgentBadge struct {
	Icon       string
	Label      string
	StyleClass string
}

// knownBadges maps exact agent identifiers to their badges.
var knownBadges = map[string]AgentBadge{
	"knowledge":         {Icon: "🧠", Label: "Knowledge", StyleClass: "knowledge"},
	"support":           {Icon: "🎧", Label: "Support", StyleClass: "support"},
	"knowledge+support": {Icon: "🔄", Label: "Ambos", StyleClass: "both"},
	"both":              {Icon: "🔄", Label: "Ambos", StyleClass: "both"},
	"router":            {Icon: "🔀", Label: "Router", StyleClass: "router"},
	"error":             {Icon: "❌", Label: "Erro", StyleClass: "error"},
}

// BadgeFor resolves an agent identifier to its badge. Resolution order:
// exact match, composite ("+"), substring match on the known families,
// then a generic robot badge with a title-cased label. The empty
// identifier means no agent answered yet and maps to the router badge.
func BadgeFor(agent string) AgentBadge {
	id := strings.ToLower(strings.TrimSpace(agent))
	if id == "" {
		return knownBadges["router"]
	}
	if badge, ok := knownBadges[id]; ok {
		return badge
	}
	if strings.Contains(id, "+") {
		return knownBadges["both"]
	}
	if strings.Contains(id, "knowledge") {
		b := knownBadges["knowledge"]
		b.Label = titleCase(agent)
		return b
	}
	if strings.Contains(id, "support") {
		b := knownBadges["support"]
		b.Label = titleCase(agent)
		return b
	}
	return AgentBadge{Icon: "🤖", Label: titleCase(agent), StyleClass: "agent"}
}

// BadgesFor resolves every agent of a reply, in order.
func BadgesFor(agents []string) []AgentBadge {
	badges := make([]AgentBadge, 0, len(agents))
	for _, a := range agents {
		badges = append(badges, BadgeFor(a))
	}
	return badges
}

// titleCase upper-cases the first rune of each underscore- or
// space-separated word.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, w := range words {
		runes := []rune(w)
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
