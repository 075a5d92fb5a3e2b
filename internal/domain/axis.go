package domain

// AxisID identifies one bipolar style dimension.
type AxisID string

const (
	AxisModernClassic     AxisID = "modern_classic"
	AxisMinimalExpressive AxisID = "minimal_expressive"
	AxisPlayfulSerious    AxisID = "playful_serious"
	AxisWarmCool          AxisID = "warm_cool"
	AxisBoldSubtle        AxisID = "bold_subtle"
	AxisOrganicGeometric  AxisID = "organic_geometric"
	AxisLuxuryAccessible  AxisID = "luxury_accessible"
)

// Axis pairs an identifier with human labels for its two poles. The positive
// pole is the first word of the identifier: a score of +1 on modern_classic
// means fully Modern, -1 means fully Classic.
type Axis struct {
	ID            AxisID `json:"id"`
	PositiveLabel string `json:"positiveLabel"`
	NegativeLabel string `json:"negativeLabel"`
}

// Axes is the fixed axis catalogue. Order matters: vector iteration, archetype
// reference vectors and tie-breaks all follow declaration order.
var Axes = []Axis{
	{ID: AxisModernClassic, PositiveLabel: "Modern", NegativeLabel: "Classic"},
	{ID: AxisMinimalExpressive, PositiveLabel: "Minimal", NegativeLabel: "Expressive"},
	{ID: AxisPlayfulSerious, PositiveLabel: "Playful", NegativeLabel: "Serious"},
	{ID: AxisWarmCool, PositiveLabel: "Warm", NegativeLabel: "Cool"},
	{ID: AxisBoldSubtle, PositiveLabel: "Bold", NegativeLabel: "Subtle"},
	{ID: AxisOrganicGeometric, PositiveLabel: "Organic", NegativeLabel: "Geometric"},
	{ID: AxisLuxuryAccessible, PositiveLabel: "Luxurious", NegativeLabel: "Accessible"},
}

var axisByID = func() map[AxisID]Axis {
	m := make(map[AxisID]Axis, len(Axes))
	for _, a := range Axes {
		m[a.ID] = a
	}
	return m
}()

func AxisByID(id AxisID) (Axis, bool) {
	a, ok := axisByID[id]
	return a, ok
}

// PoleLabel resolves a score to the label of the pole it leans toward.
// Works on either scale since only the sign is inspected.
func (a Axis) PoleLabel(score float64) string {
	if score < 0 {
		return a.NegativeLabel
	}
	return a.PositiveLabel
}

// AxisVector maps axes to scores. The canonical scale is [-1, 1]; the wide
// [-100, 100] scale survives only at two boundaries (pairwise accumulator
// output and persisted industry aggregates) and is always converted through
// ToWide/FromWide, never mixed implicitly.
type AxisVector map[AxisID]float64

func (v AxisVector) Clone() AxisVector {
	out := make(AxisVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Ordered flattens the vector into a slice following catalogue order.
// Missing axes contribute 0.
func (v AxisVector) Ordered() []float64 {
	out := make([]float64, len(Axes))
	for i, a := range Axes {
		out[i] = v[a.ID]
	}
	return out
}

// ZeroVector returns a vector with every catalogue axis present at 0.
func ZeroVector() AxisVector {
	v := make(AxisVector, len(Axes))
	for _, a := range Axes {
		v[a.ID] = 0
	}
	return v
}

// ToWide converts a canonical [-1,1] vector to the wide [-100,100] scale.
func ToWide(v AxisVector) AxisVector {
	out := make(AxisVector, len(v))
	for k, val := range v {
		out[k] = val * 100
	}
	return out
}

// FromWide converts a wide [-100,100] vector to the canonical [-1,1] scale.
func FromWide(v AxisVector) AxisVector {
	out := make(AxisVector, len(v))
	for k, val := range v {
		out[k] = val / 100
	}
	return out
}
