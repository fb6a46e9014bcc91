// Package terminology holds the static value sets used by the quality
// measure engine: named clinical concepts mapped to the codes that represent
// them in each coding system. The tables are immutable after init; lookups
// never allocate registry state.
package terminology

import (
	"fmt"
	"sort"
	"strings"
)

// System identifies a coding system in its canonical short form.
type System string

const (
	SNOMEDCT     System = "SNOMEDCT"
	ICD10CM      System = "ICD10CM"
	ICD10PCS     System = "ICD10PCS"
	CPT          System = "CPT"
	HCPCSLEVELII System = "HCPCSLEVELII"
	LOINC        System = "LOINC"
	RXNORM       System = "RXNORM"
)

// Concept names a clinical idea backed by one or more value sets.
type Concept string

// NormalizeSystem maps the system identifiers seen on stored codings (short
// names, URIs, hyphenated variants) to the canonical System constants. An
// unrecognized identifier is returned upper-cased with separators stripped so
// exact matches still work for systems we have not special-cased.
func NormalizeSystem(raw string) System {
	s := strings.ToUpper(strings.NewReplacer("-", "", "_", "", " ", "").Replace(raw))
	switch {
	case strings.Contains(s, "SNOMED"), strings.Contains(s, "SCT"):
		return SNOMEDCT
	case strings.Contains(s, "LOINC"):
		return LOINC
	case strings.Contains(s, "RXNORM"):
		return RXNORM
	case s == "ICD10", s == "ICD10CM", strings.Contains(s, "ICD10CM"):
		return ICD10CM
	case strings.Contains(s, "ICD10PCS"):
		return ICD10PCS
	case s == "CPT", strings.Contains(s, "CPT"):
		return CPT
	case s == "HCPCS", strings.Contains(s, "HCPCS"):
		return HCPCSLEVELII
	}
	return System(s)
}

// NormalizeCode strips the dot from ICD-10 style codes so "Z12.11" and
// "Z1211" compare equal. Other systems pass through unchanged.
func NormalizeCode(sys System, code string) string {
	if sys == ICD10CM || sys == ICD10PCS {
		return strings.ReplaceAll(code, ".", "")
	}
	return code
}

// CodesFor returns the union of codes defined for the concept under the given
// systems. A system with no codes on the concept contributes nothing; that is
// not an error, since most concepts define codes for only some systems. An
// unknown concept is a programmer error and panics.
func CodesFor(c Concept, systems ...System) map[string]struct{} {
	vs, ok := registry[c]
	if !ok {
		panic(fmt.Sprintf("terminology: unknown concept %q", c))
	}
	out := make(map[string]struct{})
	for _, sys := range systems {
		for _, code := range vs[sys] {
			out[NormalizeCode(sys, code)] = struct{}{}
		}
	}
	return out
}

// Codes returns the codes for one system on a concept in sorted order.
// Callers that need a deterministic representative code (e.g. to attach to a
// lab order recommendation) take the first element.
func Codes(c Concept, sys System) []string {
	vs, ok := registry[c]
	if !ok {
		panic(fmt.Sprintf("terminology: unknown concept %q", c))
	}
	out := append([]string(nil), vs[sys]...)
	sort.Strings(out)
	return out
}

// Known reports whether a concept is registered. Used by startup validation,
// not by the evaluation path.
func Known(c Concept) bool {
	_, ok := registry[c]
	return ok
}
