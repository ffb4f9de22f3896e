package argument

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse consumes the raw remainder of an input line against defs, which must
// already be sorted by ascending position (command binding guarantees this).
// It returns either a fully populated Set or the first failure in position
// order; the error text is the user-facing message.
func Parse(defs []Def, remainder string) (*Set, error) {
	set := newSet()
	rest := remainder
	for _, def := range defs {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)

		if rest == "" {
			if !def.Optional {
				return nil, fmt.Errorf("Argument %q is missing!", def.Name)
			}
			if def.HasDefault {
				value, err := def.convertAndValidate(def.Default)
				if err != nil {
					return nil, err
				}
				set.put(def.Name, value, true)
			} else {
				set.putOmitted(def.Name)
			}
			continue
		}

		var token string
		if def.Multisegmented {
			token, rest = rest, ""
		} else {
			token, rest = splitToken(rest)
		}
		value, err := def.convertAndValidate(token)
		if err != nil {
			return nil, err
		}
		set.put(def.Name, value, false)
	}

	if strings.TrimSpace(rest) != "" {
		return nil, errors.New("Too many arguments!")
	}
	return set, nil
}

// splitToken cuts the first whitespace-delimited token off s. The rest keeps
// its leading separator; callers trim before the next read.
func splitToken(s string) (token, rest string) {
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
