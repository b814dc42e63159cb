// Profiling:
// go build ./profile/targeting
// go tool pprof -http=":8000" -nodefraction=0.001 ./targeting cpu.pprof

package main

import (
	"math/rand"

	"github.com/edwinsyarief/sesshoku"
	"github.com/pkg/profile"
)

func main() {
	rounds := 20
	ticks := 200
	interactors := 200
	interactables := 2000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, interactors, interactables, 1)
	p.Stop()

	p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, interactors, interactables, 4)
	p.Stop()
}

func run(rounds, ticks, numInteractors, numInteractables, workers int) {
	rng := rand.New(rand.NewSource(1))
	for range rounds {
		w := sesshoku.NewWorld(numInteractors + numInteractables)
		for range numInteractables {
			it, _ := sesshoku.NewInteractable(2+rng.Float32()*4, rng.Intn(4) == 0)
			sesshoku.SpawnInteractable(w, sesshoku.NewTransform(randomVec(rng, 50), sesshoku.V3(0, 0, 1)), it)
		}
		players := make([]sesshoku.Entity, numInteractors)
		for i := range players {
			players[i] = sesshoku.SpawnInteractor(w, sesshoku.NewTransform(randomVec(rng, 50), randomVec(rng, 1)))
		}
		cfg := sesshoku.DefaultConfig()
		cfg.Workers = workers
		plugin, err := sesshoku.NewPlugin(w, cfg)
		if err != nil {
			panic(err)
		}
		for t := range ticks {
			plugin.Fire(players[t%len(players)])
			plugin.Update()
		}
	}
}

func randomVec(rng *rand.Rand, extent float32) sesshoku.Vec3 {
	return sesshoku.V3(
		(rng.Float32()*2-1)*extent,
		(rng.Float32()*2-1)*extent,
		(rng.Float32()*2-1)*extent,
	)
}
