package packs

import "github.com/arthur-debert/home-symlink/pkg/symlink"

// SummaryKind tells how the statuses of a package relate to each other
type SummaryKind int

const (
	// SummaryEmpty means the package declares no symlinks
	SummaryEmpty SummaryKind = iota
	// SummaryUniform means every symlink has the same status
	SummaryUniform
	// SummaryMixed means at least two statuses differ
	SummaryMixed
)

// Summary is the aggregate status of a package. Status is only meaningful
// for SummaryUniform.
type Summary struct {
	Kind   SummaryKind
	Status symlink.Status
}

// Aggregate reduces statuses to a Summary. Error statuses only count as
// equal when their reasons match.
func Aggregate(statuses []symlink.Status) Summary {
	if len(statuses) == 0 {
		return Summary{Kind: SummaryEmpty}
	}

	first := statuses[0]
	for _, s := range statuses[1:] {
		if s != first {
			return Summary{Kind: SummaryMixed}
		}
	}

	return Summary{Kind: SummaryUniform, Status: first}
}

// Label returns a short machine friendly name for the summary
func (s Summary) Label() string {
	switch s.Kind {
	case SummaryEmpty:
		return "empty"
	case SummaryMixed:
		return "mixed"
	default:
		return s.Status.State.String()
	}
}

// String renders the summary as shown next to the package name
func (s Summary) String() string {
	switch s.Kind {
	case SummaryEmpty:
		return "(X) No symlinks defined"
	case SummaryMixed:
		return "(-) Mixed"
	default:
		return s.Status.String()
	}
}
