// Package network_test shows how loading vectors become a signed edge list.
// Each example is runnable via “go test -run Example”.
package network_test

import (
	"fmt"

	"github.com/katalvlaran/omicsnet/network"
	"github.com/katalvlaran/omicsnet/spls"
)

// ExampleCrossEdges pairs two genes with two metabolites. g2 carries no
// weight and is dropped; the |0.05| pair falls under the threshold.
func ExampleCrossEdges() {
	a, _ := spls.NewLoadingVector([]string{"g1", "g2", "g3"}, []float64{0.5, 0, -0.2})
	b, _ := spls.NewLoadingVector([]string{"m1", "m2"}, []float64{0.4, -0.1})

	list, err := network.CrossEdges(a, b, 0.06)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range list.Edges() {
		fmt.Printf("%s-%s %.2f %s\n", e.FeatureA, e.FeatureB, e.Weight, e.Sign)
	}
	// Output:
	// g1-m1 0.20 Positive
	// g3-m1 -0.08 Negative
}
