package nn

import "gonum.org/v1/gonum/stat/distuv"

// weightDist is the initialization distribution for weights and biases,
// uniform on [-1, 1) like the classic scalar-MLP setup.
var weightDist = distuv.Uniform{Min: -1, Max: 1}

// initWeight draws one initial parameter value.
func initWeight() float64 {
	return weightDist.Rand()
}
