// Profiling:
// go build ./profile/iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/edwinsyarief/slotvec/internal/workload"
)

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 1000
	elements := 100000
	run(rounds, iters, elements)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC()
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numElements int) {
	for range rounds {
		v := workload.FillVec3(numElements)
		for range iters {
			workload.SumVec3Len(v)
			workload.NormalizeVec3(v)
		}
	}
}
