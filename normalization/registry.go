// SPDX-License-Identifier: MIT

package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// registry maps configuration names to strategies.
var registry = map[string]Func{
	"minmax":            MinMax,
	"max":               Max,
	"sum":               Sum,
	"vector":            Vector,
	"logarithmic":       Logarithmic,
	"linear":            Linear,
	"nonlinear":         Nonlinear,
	"enhanced_accuracy": EnhancedAccuracy,
	"lai_hwang":         LaiHwang,
	"zavadskas_turskis": ZavadskasTurskis,
}

// ByName resolves a strategy by its configuration name (case-insensitive,
// '-' accepted in place of '_').
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if fn, ok := registry[key]; ok {
		return fn, nil
	}

	return nil, fmt.Errorf("ByName(%q): %w (known: %s)", name, ErrUnknown, strings.Join(Names(), ", "))
}

// Names returns the registered strategy names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
