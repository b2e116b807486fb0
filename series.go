package chart

import "math"

// Point is one labeled value of a series or one funnel stage.
type Point struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// Series is an ordered sequence of points. Order is chronological for line
// charts and stage order for funnels.
type Series []Point

// Values returns the finite values of s in order.
func (s Series) Values() []float64 {
	vs := make([]float64, 0, len(s))
	for _, p := range s {
		if isFinite(p.Value) {
			vs = append(vs, p.Value)
		}
	}
	return vs
}

// Last returns the last point of s and false if s is empty.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// Dataset is the bundle a dashboard refresh hands to the dispatcher.
type Dataset struct {
	Revenue Series `yaml:"revenue" json:"revenue"`
	Signups Series `yaml:"signups" json:"signups"`
	Funnel  Series `yaml:"funnel" json:"funnel"`

	// Heat optionally supplies heat-map intensities as rows of columns.
	// When empty, the dispatcher's intensity generator is used.
	Heat [][]float64 `yaml:"heat,omitempty" json:"heat,omitempty"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
