package classify

import (
	"slices"
	"strings"
)

var defaultGroupNames = []string{
	"Erai-raws", "HorribleSubs", "FFF", "Commie",
	"SallySubs", "CBM", "Fate-Akuma", "niizk", "OZC",
	"kuchikirukia", "Evil_Genuis", "illya_", "Beatrice-Raws",
	"Zurako", "NoobSubs", "OTR", "Orphan-fussoir", "lleur",
	"REVO", "deanzel", "RH", "FMA1394", "R2JxR1", "Elysium",
	"Afro", "Kametsu", "bxyh", "BSS", "NOP", "Team Nanban",
	"35mm",
}

// Groups is a read-only set of recognized release group names. Membership is
// exact and case-sensitive.
type Groups struct {
	names map[string]struct{}
}

// DefaultGroups is the built-in set of known release groups.
var DefaultGroups = NewGroups()

// NewGroups returns the built-in groups plus extra. Extra names are trimmed and
// empty entries ignored.
func NewGroups(extra ...string) Groups {
	names := make(map[string]struct{}, len(defaultGroupNames)+len(extra))
	for _, name := range defaultGroupNames {
		names[name] = struct{}{}
	}
	for _, name := range extra {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names[trimmed] = struct{}{}
		}
	}
	return Groups{names: names}
}

// Has reports whether name is a known group.
func (g Groups) Has(name string) bool {
	_, ok := g.names[name]
	return ok
}

// Len returns the number of known groups.
func (g Groups) Len() int {
	return len(g.names)
}

// Names returns the group names sorted alphabetically.
func (g Groups) Names() []string {
	out := make([]string, 0, len(g.names))
	for name := range g.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
