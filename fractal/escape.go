package fractal

import "github.com/lixenwraith/vi-mandel/constant"

// EscapeTime iterates z = z*z + c from z = 0 and returns the step index at which
// |z|^2 first exceeds the escape radius, or maxIter if the orbit stays bounded
// The threshold is tested on the carried-over z before the update of that step
// A non-positive budget returns 0 without iterating
func EscapeTime(cre, cim float64, maxIter int) int {
	if maxIter <= 0 {
		return 0
	}

	var zre, zim float64
	for i := 0; i < maxIter; i++ {
		if zre*zre+zim*zim > constant.EscapeRadiusSq {
			return i
		}
		zre, zim = zre*zre-zim*zim+cre, 2*zre*zim+cim
	}
	return maxIter
}
