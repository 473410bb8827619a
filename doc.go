/*
Package traits assigns per-individual trait values to household occupants for
synthetic population generation.

A trait is a named attribute (a physiological or behavioral magnitude) drawn
from a distribution. Households arrive as occupancy arrays: one slot per
possible member, non-zero for an occupied slot and zero for padding. Sampling
returns an array of the same length in which padding stays zero and each
occupant gets an independent draw.

# Distributions

  - constant: every occupant gets the same value.
  - gamma: occupants get draws whose mean and variance match the configured
    values. A zero variance degenerates to constant-at-mean.

# Usage

A Catalog bundles named traits, typically loaded from a YAML file:

	traits:
	  - name: susceptibility
	    distribution: gamma
	    mean: 1.0
	    variance: 0.5
	  - name: infectivity
	    distribution: constant
	    value: 1.0

Then:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/traits"
		"github.com/aretw0/traits/pkg/rng"
	)

	func main() {
		src, _ := rng.NewSource(42)
		cat, err := traits.Load("traits.yaml", traits.WithSource(src))
		if err != nil {
			log.Fatal(err)
		}

		values, err := cat.Sample("susceptibility", []float64{1, 1, 0, 0})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(values)
	}

Individual samplers live in package trait and can be used without a catalog.
*/
package traits
