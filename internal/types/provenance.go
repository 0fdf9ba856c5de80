package types

// Provenance identifies which snapshot a comparison record came from.
type Provenance string

const (
	// ProvenanceRaw tags records read from the unprocessed snapshot.
	ProvenanceRaw Provenance = "raw"
	// ProvenanceProcessed tags records read from the processed snapshot.
	ProvenanceProcessed Provenance = "processed"
)

// Label returns the display form used in chart legends and tooltips.
func (p Provenance) Label() string {
	switch p {
	case ProvenanceRaw:
		return "Raw"
	case ProvenanceProcessed:
		return "Processed"
	default:
		return string(p)
	}
}
