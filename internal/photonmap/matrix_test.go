package photonmap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRotationsOrthonormal(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, a := range []Real{0, 0.3, math.Pi / 2, 2.5, -1} {
		for name, R := range map[string]Mat3{
			"rotY":   rotY(a),
			"rotX":   rotX(a),
			"angles": rotFromAngles(a, a/2),
		} {
			if diff := cmp.Diff(I3(), R.Mul(R.Transpose()), approx); diff != "" {
				t.Fatalf("%s(%v) not orthonormal (-want +got):\n%s", name, a, diff)
			}
		}
	}
	v := rotX(math.Pi / 2).MulVec(Vector3{0, 1, 0})
	if diff := cmp.Diff(Vector3{0, 0, 1}, v, approx); diff != "" {
		t.Fatalf("rotX quarter turn (-want +got):\n%s", diff)
	}
}
