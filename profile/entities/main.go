// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sesshoku"
	"github.com/edwinsyarief/sesshoku/logger"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 1000
	interactables := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, interactables)
	p.Stop()
}

// run spawns a ring of interactables around one interactor, runs a targeting
// pass and despawns them again, so entity IDs and target sets are recycled
// every iteration.
func run(rounds, iters, numInteractables int) {
	it, err := sesshoku.NewInteractable(3, false)
	if err != nil {
		panic(err)
	}
	for range rounds {
		w := sesshoku.NewWorld(numInteractables + 1)
		sesshoku.SpawnInteractor(w, sesshoku.NewTransform(sesshoku.V3(0, 0, 0), sesshoku.V3(0, 0, 1)))
		builder := sesshoku.NewBuilder2[sesshoku.Transform, sesshoku.Interactable](w)
		targeting := sesshoku.NewTargetingSystem(w, logger.Discard(), 1)
		query := sesshoku.NewFilter[sesshoku.Interactable](w)

		for range iters {
			for i := range numInteractables {
				x := float32(i%20) - 10
				builder.NewEntity(sesshoku.NewTransform(sesshoku.V3(x*0.1, 0, 2), sesshoku.V3(0, 0, -1)), it)
			}
			targeting.Update()
			entities := query.Entities()
			w.RemoveEntities(entities)
		}
	}
}
