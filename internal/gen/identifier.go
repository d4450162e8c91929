package gen

import (
	"fmt"
	"strings"
	"unicode"
)

// GoName converts a raw classname or property key into an exported Go
// identifier. Tokens split on every non-alphanumeric rune; each token is
// capitalized with the rest kept as written, so "info_player_start" becomes
// "InfoPlayerStart" and "targetName" stays "TargetName". Names that would
// start with a digit get a "Field" prefix.
func GoName(raw string) string {
	var b strings.Builder

	newToken := true

	for _, r := range raw {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			newToken = true

			continue
		}

		if newToken {
			r = unicode.ToUpper(r)
			newToken = false
		}

		b.WriteRune(r)
	}

	name := b.String()
	if name == "" {
		return "Field"
	}

	if name[0] >= '0' && name[0] <= '9' {
		return "Field" + name
	}

	return name
}

// namePool hands out unique identifiers within one declaration scope.
// Distinct raw names can sanitize to the same Go name; later claims get a
// numeric suffix.
type namePool struct {
	taken map[string]bool
}

func newNamePool(reserved ...string) *namePool {
	pool := &namePool{taken: make(map[string]bool, len(reserved))}
	for _, r := range reserved {
		pool.taken[r] = true
	}

	return pool
}

// Claim returns name, or name2, name3, ... if already taken.
func (p *namePool) Claim(name string) string {
	if !p.taken[name] {
		p.taken[name] = true

		return name
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		if !p.taken[candidate] {
			p.taken[candidate] = true

			return candidate
		}
	}
}
