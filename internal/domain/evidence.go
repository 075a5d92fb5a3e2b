package domain

// Evidence is one unit of proof extracted from a single answer: a signed pull
// on one axis (canonical scale) and a weight in [0,1] reflecting how decisive
// the answer type is.
type Evidence struct {
	Axis   AxisID  `json:"axis"`
	Delta  float64 `json:"delta"`
	Weight float64 `json:"weight"`
}
