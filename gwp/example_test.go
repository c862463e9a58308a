// SPDX-License-Identifier: MIT
package gwp_test

import (
	"fmt"

	"github.com/katalvlaran/exiogwp/gwp"
)

func ExampleFormatFloat() {
	for _, v := range []float64{15, 0.5, 0.00001, 1e16} {
		fmt.Println(gwp.FormatFloat(v))
	}
	// Output:
	// 15.0
	// 0.5
	// 1e-05
	// 1e+16
}
