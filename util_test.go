package pathfollow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func v(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

var vecComparer = cmp.Comparer(func(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= 1e-9
})
