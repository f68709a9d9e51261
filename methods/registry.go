// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"sort"
	"strings"
)

// registry maps configuration names to constructors. COMET is absent: it
// needs characteristic values and a ranking strategy (see NewCOMET).
var registry = map[string]func(opts ...Option) Method{
	"topsis":       func(opts ...Option) Method { return NewTOPSIS(opts...) },
	"vikor":        func(opts ...Option) Method { return NewVIKOR(opts...) },
	"copras":       func(opts ...Option) Method { return NewCOPRAS(opts...) },
	"spotis":       func(opts ...Option) Method { return NewSPOTIS(opts...) },
	"aras":         func(opts ...Option) Method { return NewARAS(opts...) },
	"cocoso":       func(opts ...Option) Method { return NewCOCOSO(opts...) },
	"codas":        func(opts ...Option) Method { return NewCODAS(opts...) },
	"edas":         func(opts ...Option) Method { return NewEDAS(opts...) },
	"mabac":        func(opts ...Option) Method { return NewMABAC(opts...) },
	"mairca":       func(opts ...Option) Method { return NewMAIRCA(opts...) },
	"marcos":       func(opts ...Option) Method { return NewMARCOS(opts...) },
	"moora":        func(opts ...Option) Method { return NewMOORA(opts...) },
	"ocra":         func(opts ...Option) Method { return NewOCRA(opts...) },
	"promethee_ii": newPROMETHEEIIFromOptions,
}

// ByName builds a method from its configuration name (case-insensitive,
// "-" read as "_"). The preference shape of "promethee_ii" comes from
// WithPreference.
func ByName(name string, opts ...Option) (Method, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if ctor, ok := registry[key]; ok {
		return ctor(opts...), nil
	}

	return nil, fmt.Errorf("ByName(%q): %w (known: %s)", name, ErrUnknownMethod, strings.Join(Names(), ", "))
}

// newPROMETHEEIIFromOptions takes the preference shape from WithPreference.
func newPROMETHEEIIFromOptions(opts ...Option) Method {
	return NewPROMETHEEII(gatherOptions(opts...).preference, opts...)
}

// Names lists registered method names in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
