// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"math/rand/v2"

	"github.com/pkg/profile"

	"github.com/edwinsyarief/slotvec"
	"github.com/edwinsyarief/slotvec/internal/workload"
)

func main() {
	rounds := 50
	iters := 10000
	elements := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, elements)
	p.Stop()
}

func run(rounds, iters, numElements int) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range rounds {
		v := slotvec.WithCapacity[uint32](numElements)
		live := make([]slotvec.Handle, 0, numElements)
		for range iters {
			live = workload.Churn(v, live, numElements, rng)
			workload.AddU32(v, 1)
		}
	}
}
