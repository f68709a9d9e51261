// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]Func{
	"equal":    Equal,
	"entropy":  Entropy,
	"std":      StandardDeviation,
	"variance": Variance,
	"gini":     Gini,
	"merec":    MEREC,
	"critic":   CRITIC,
	"cilos":    CILOS,
	"idocriw":  IDOCRIW,
	"angle":    Angle,
}

// ByName resolves a weighting function by its configuration name.
// "standard_deviation" is accepted as an alias of "std".
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "standard_deviation" {
		key = "std"
	}
	if fn, ok := registry[key]; ok {
		return fn, nil
	}

	return nil, fmt.Errorf("ByName(%q): %w (known: %s)", name, ErrUnknown, strings.Join(Names(), ", "))
}

// Names lists registered weighting names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
