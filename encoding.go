package qscore

import "math"

// Domain selects the angle table and blend parameters for a scoring
// run. Each domain used to carry its own near-identical engine in the
// upstream system; here only the encoding and blend tables differ.
type Domain string

const (
	DomainBusiness   Domain = "business"
	DomainLegal      Domain = "legal"
	DomainMarketing  Domain = "marketing"
	DomainContent    Domain = "content"
	DomainCompliance Domain = "compliance"
)

// ProblemEncoding maps one named domain variable to a normalized value
// in [0,1] and a weight. Supplied by the caller, never mutated here.
type ProblemEncoding struct {
	Name   string
	Value  float64
	Weight float64
}

// angleScales gives the multiple of pi applied per variable. The scale
// reflects each variable's natural units: raw rates like conversion sit
// near zero and get a wide scale, already-normalized levels get 1, and
// risk-style variables rotate negative.
var angleScales = map[Domain]map[string]float64{
	DomainBusiness: {
		"revenue":    1,
		"automation": 1,
		"risk":       -1,
	},
	DomainLegal: {
		"evidence":  1,
		"precedent": 1,
		"bias":      2,
	},
	DomainMarketing: {
		"conversion": 10,
		"targeting":  1,
		"budget":     1,
	},
	DomainContent: {
		"quality":    1,
		"engagement": 5,
		"seo":        1,
	},
	DomainCompliance: {
		"risk":       2,
		"regulation": 1,
		"security":   1,
	},
}

// KnownDomain reports whether a domain has encoding and blend tables.
func KnownDomain(d Domain) bool {
	_, ok := angleScales[d]
	return ok
}

// Angle converts one encoding entry to a rotation angle:
// value * pi * scale, with the value clamped into [0,1] first. Variables
// absent from the domain table fall back to their declared weight as
// the scale (1 when unset).
func Angle(d Domain, enc ProblemEncoding) float64 {
	scale, ok := angleScales[d][enc.Name]
	if !ok {
		scale = enc.Weight
		if scale == 0 {
			scale = 1
		}
	}
	return clamp01(enc.Value) * math.Pi * scale
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
