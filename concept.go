package signpost

// Concept is one tag from the closed visualization vocabulary. Its value
// is the display string transmitted in the record label, so a Concept
// formats as itself and never changes after definition.
type Concept string

// The full concept vocabulary. Severity, outcome, log-level, and color
// concepts share one namespace because the visualization layer treats
// them uniformly.
const (
	Success  Concept = "Success"
	Failure  Concept = "Failure"
	Fault    Concept = "Fault"
	Critical Concept = "Critical"
	Error    Concept = "Error"
	Debug    Concept = "Debug"
	Pedantic Concept = "Pedantic"
	Info     Concept = "Info"
	Signpost Concept = "Signpost"

	High     Concept = "High"
	Moderate Concept = "Moderate"
	Low      Concept = "Low"
	VeryLow  Concept = "Very Low"

	Red    Concept = "Red"
	Orange Concept = "Orange"
	Blue   Concept = "Blue"
	Purple Concept = "Purple"
	Green  Concept = "Green"
)

// String returns the concept's display string.
func (c Concept) String() string {
	return string(c)
}

// Concepts returns the closed set of concepts in declaration order.
// The returned slice is a fresh copy, safe to modify.
func Concepts() []Concept {
	return []Concept{
		Success, Failure, Fault, Critical, Error,
		Debug, Pedantic, Info, Signpost,
		High, Moderate, Low, VeryLow,
		Red, Orange, Blue, Purple, Green,
	}
}
