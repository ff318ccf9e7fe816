package main

import (
	"fmt"
	"log"

	"github.com/meenmo/mocurve/interp"
)

func main() {
	// ATM volatility by expiry (years).
	expiries := []float64{0.001, 0.4, 1.0, 1.8, 2.8, 5.0}
	vols := []float64{3.0, 4.0, 3.1, 2.0, 7.0, 2.0}

	curve, err := interp.TimeSquareInterpolator.Bind(expiries, vols, interp.FlatExtrapolator, interp.FlatExtrapolator)
	if err != nil {
		log.Fatal(err)
	}

	for _, t := range []float64{0.2, 1.1, 2.3, 6.0} {
		fmt.Printf("t=%.2f  vol=%.12f  dvol/dt=%.8f\n", t, curve.Eval(t), curve.FirstDerivative(t))
		fmt.Printf("        sensitivity=%v\n", curve.ParameterSensitivity(t))
	}
}
