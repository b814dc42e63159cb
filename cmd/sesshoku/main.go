// Command sesshoku loads a scene, runs the interaction plugin for a number of
// ticks and logs every interaction.
//
//	go run ./cmd/sesshoku -scene scene/testdata/workshop.yaml -fire player -ticks 3
package main

import (
	"flag"
	"os"

	"github.com/edwinsyarief/sesshoku"
	"github.com/edwinsyarief/sesshoku/logger"
	"github.com/edwinsyarief/sesshoku/scene"
	"github.com/sirupsen/logrus"
)

func main() {
	scenePath := flag.String("scene", "scene/testdata/workshop.yaml", "path to the YAML scene")
	fire := flag.String("fire", "", "name of the interactor to fire every tick")
	ticks := flag.Int("ticks", 1, "number of ticks to run")
	flag.Parse()

	cfg, err := sesshoku.LoadConfig()
	if err != nil {
		logger.New(logger.Config{}).WithError(err).Fatal("Invalid configuration.")
	}
	log := logger.New(cfg.Log)

	sc, err := scene.LoadFile(*scenePath)
	if err != nil {
		log.WithError(err).Fatal("Scene could not be loaded.")
	}

	w := sesshoku.NewWorld(cfg.InitialCapacity)
	ents, err := sc.Spawn(w)
	if err != nil {
		log.WithError(err).Fatal("Scene could not be spawned.")
	}
	names := make(map[sesshoku.Entity]string, len(ents))
	for name, e := range ents {
		names[e] = name
	}

	var firing sesshoku.Entity
	if *fire != "" {
		e, ok := ents[*fire]
		if !ok {
			log.WithField("interactor", *fire).Error("Unknown interactor.")
			os.Exit(2)
		}
		firing = e
	}

	plugin, err := sesshoku.NewPlugin(w, cfg, sesshoku.WithLogger(log))
	if err != nil {
		log.WithError(err).Fatal("Plugin could not be installed.")
	}
	plugin.Subscribe(func(ev sesshoku.InteractionEvent) {
		log.WithFields(logrus.Fields{
			"tick":         plugin.Tick(),
			"interactor":   names[ev.Interactor],
			"interactable": names[ev.Interactable],
		}).Info("Interaction.")
	})

	for range *ticks {
		if *fire != "" {
			plugin.Fire(firing)
		}
		plugin.Update()

		report := plugin.LastTargeting()
		fields := logrus.Fields{
			"tick":    plugin.Tick(),
			"targets": report.Targets,
			"pairs":   report.Pairs,
		}
		if *fire != "" {
			if in := sesshoku.GetComponent[sesshoku.Interactor](w, firing); in != nil {
				if c, ok := in.Closest(); ok {
					fields["closest"] = names[c]
				}
			}
		}
		log.WithFields(fields).Info("Tick complete.")
	}
}
