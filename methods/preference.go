// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"strings"
)

// PreferenceKind enumerates the PROMETHEE preference function shapes.
type PreferenceKind int

const (
	// Usual: 1 for any positive difference.
	Usual PreferenceKind = iota
	// UShape: 1 once the difference exceeds q.
	UShape
	// VShape: linear from 0 to 1 on (0, p], 1 beyond p.
	VShape
	// Level: 0.5 on (q, p], 1 beyond p.
	Level
	// VShape2: linear from 0 to 1 on (q, p], 1 beyond p.
	VShape2
)

var preferenceNames = [...]string{
	Usual:   "usual",
	UShape:  "ushape",
	VShape:  "vshape",
	Level:   "level",
	VShape2: "vshape_2",
}

// String returns the configuration name of k.
func (k PreferenceKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("PreferenceKind(%d)", int(k))
	}

	return preferenceNames[k]
}

func (k PreferenceKind) valid() bool { return k >= Usual && k <= VShape2 }

// needsP reports whether the shape is undefined without a preference threshold.
func (k PreferenceKind) needsP() bool { return k == VShape || k == Level || k == VShape2 }

// ParsePreferenceKind parses a preference function name (case-insensitive;
// "-" is read as "_", and "vshape2" is accepted for "vshape_2").
func ParsePreferenceKind(s string) (PreferenceKind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if key == "vshape2" {
		key = "vshape_2"
	}
	for i, name := range preferenceNames {
		if key == name {
			return PreferenceKind(i), nil
		}
	}

	return 0, fmt.Errorf("ParsePreferenceKind(%q): %w (allowed: %s)",
		s, ErrUnknownPreference, strings.Join(preferenceNames[:], ", "))
}

// Preference is one criterion's preference function: a shape with its
// indifference (Q) and preference (P) thresholds. Unused thresholds are 0.
type Preference struct {
	Kind PreferenceKind
	Q, P float64
}

// Degree maps a pairwise difference d (positive = first alternative is
// better) to a preference degree in [0,1].
func (p Preference) Degree(d float64) float64 {
	switch p.Kind {
	case UShape:
		if d > p.Q {
			return 1
		}
	case VShape:
		switch {
		case d > p.P:
			return 1
		case d > 0:
			return d / p.P
		}
	case Level:
		switch {
		case d > p.P:
			return 1
		case d > p.Q:
			return 0.5
		}
	case VShape2:
		switch {
		case d > p.P:
			return 1
		case d > p.Q:
			return (d - p.Q) / (p.P - p.Q)
		}
	default:
		if d > 0 {
			return 1
		}
	}

	return 0
}

// validate checks thresholds against the shape.
func (p Preference) validate() error {
	switch {
	case !p.Kind.valid():
		return fmt.Errorf("%s: %w", p.Kind, ErrUnknownPreference)
	case p.Kind.needsP() && !(p.P > 0):
		return fmt.Errorf("%s: p=%g: %w", p.Kind, p.P, ErrMissingThreshold)
	case (p.Kind == Level || p.Kind == VShape2) && !(p.Q < p.P):
		return fmt.Errorf("%s: q=%g, p=%g: %w", p.Kind, p.Q, p.P, ErrInvalidThreshold)
	}

	return nil
}
