// Package workload holds the data sets and loops shared by the benchmarks,
// the profiling mains and slotvec-bench.
package workload

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/edwinsyarief/slotvec"
)

// Vec3 is a small value type used to measure iteration over structs.
type Vec3 struct {
	X, Y, Z float32
}

// Len returns the Euclidean length of p.
func (p Vec3) Len() float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z)))
}

// Normalize scales p to unit length. The zero vector is left untouched.
func (p *Vec3) Normalize() {
	l := p.Len()
	if l == 0 {
		return
	}
	p.X /= l
	p.Y /= l
	p.Z /= l
}

// FillU32 returns a Vec holding 0..n-1.
func FillU32(n int) *slotvec.Vec[uint32] {
	v := slotvec.WithCapacity[uint32](n)
	for i := range n {
		v.Push(uint32(i))
	}
	return v
}

// FillVec3 returns a Vec holding n vectors {2i, 3i, 5i}.
func FillVec3(n int) *slotvec.Vec[Vec3] {
	v := slotvec.WithCapacity[Vec3](n)
	for i := range n {
		f := float32(i)
		v.Push(Vec3{X: f * 2, Y: f * 3, Z: f * 5})
	}
	return v
}

// SumU32 sums the live elements.
func SumU32(v *slotvec.Vec[uint32]) uint32 {
	var sum uint32
	for x := range v.Values() {
		sum += x
	}
	return sum
}

// AddU32 adds delta to every live element in place and returns the new sum.
func AddU32(v *slotvec.Vec[uint32], delta uint32) uint32 {
	var sum uint32
	for p := range v.Pointers() {
		*p += delta
		sum += *p
	}
	return sum
}

// SumVec3Len sums the lengths of the live vectors.
func SumVec3Len(v *slotvec.Vec[Vec3]) float32 {
	var sum float32
	for p := range v.Values() {
		sum += p.Len()
	}
	return sum
}

// NormalizeVec3 normalizes every live vector in place and returns the sum of
// the resulting lengths.
func NormalizeVec3(v *slotvec.Vec[Vec3]) float32 {
	var sum float32
	c := v.Cursor()
	for c.Next() {
		p := c.Get()
		p.Normalize()
		sum += p.Len()
	}
	return sum
}

// Churn runs rounds of random pushes and removals against v, keeping the
// handles it issued in live. Roughly half of the operations are removals of a
// random live handle, so the Vec keeps recycling slots.
//
// Every handle in live must refer to a live element of v; Churn panics if a
// removal finds one stale.
func Churn(v *slotvec.Vec[uint32], live []slotvec.Handle, rounds int, rng *rand.Rand) []slotvec.Handle {
	for i := range rounds {
		if len(live) > 0 && rng.IntN(2) == 0 {
			j := rng.IntN(len(live))
			if !v.Remove(live[j]) {
				panic(errors.AssertionFailedf("churn: handle %+v was not live", live[j]))
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}
		live = append(live, v.Push(uint32(i)))
	}
	return live
}

// Runner executes one workload of the given size for iters iterations and
// returns a value derived from the work so it cannot be optimized away. check
// is called on every Vec the workload used once it is done.
type Runner func(size, iters int, seed uint64, check func(Checker) error) (float64, error)

// Checker is satisfied by every slotvec.Vec instantiation.
type Checker interface {
	CheckInvariants() error
	Len() int
}

// Named maps workload names to runners.
var Named = map[string]Runner{
	"u32/iter": func(size, iters int, _ uint64, check func(Checker) error) (float64, error) {
		v := FillU32(size)
		var sum uint32
		for range iters {
			sum += SumU32(v)
		}
		return float64(sum), check(v)
	},
	"u32/iter_mut": func(size, iters int, _ uint64, check func(Checker) error) (float64, error) {
		v := FillU32(size)
		var sum uint32
		for range iters {
			sum += AddU32(v, 42)
		}
		return float64(sum), check(v)
	},
	"vec3/iter": func(size, iters int, _ uint64, check func(Checker) error) (float64, error) {
		v := FillVec3(size)
		var sum float32
		for range iters {
			sum += SumVec3Len(v)
		}
		return float64(sum), check(v)
	},
	"vec3/iter_mut": func(size, iters int, _ uint64, check func(Checker) error) (float64, error) {
		v := FillVec3(size)
		var sum float32
		for range iters {
			sum += NormalizeVec3(v)
		}
		return float64(sum), check(v)
	},
	"u32/churn": func(size, iters int, seed uint64, check func(Checker) error) (float64, error) {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		v := slotvec.WithCapacity[uint32](size)
		live := make([]slotvec.Handle, 0, size)
		for range iters {
			live = Churn(v, live, size, rng)
		}
		if v.Len() != len(live) {
			return 0, errors.AssertionFailedf("churn: vector has %d elements, %d handles live", v.Len(), len(live))
		}
		return float64(v.Len()), check(v)
	},
}

// Names returns the registered workload names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Named))
	for name := range Named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
