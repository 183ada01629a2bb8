// cmd/growatt-bridge/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/mbadberg/growatt-bridge/internal/config"
	"github.com/mbadberg/growatt-bridge/internal/control"
	"github.com/mbadberg/growatt-bridge/internal/metrics"
	"github.com/mbadberg/growatt-bridge/internal/poller"
	"github.com/mbadberg/growatt-bridge/internal/publish"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: growatt-bridge <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------
	// MQTT session
	// --------------------

	pub := publish.New(cfg.MQTT)
	if err := pub.Connect(); err != nil {
		log.Fatalf("mqtt connect failed: %v", err)
	}
	defer pub.Close()

	if cfg.Metrics.Enabled {
		go metrics.Serve(cfg.Metrics.Listen)
	}

	// --------------------
	// Build per-inverter pipelines
	// --------------------

	for _, inv := range cfg.Inverters {
		p, client, err := poller.Build(inv)
		if err != nil {
			log.Fatalf("poller build failed (inverter=%s): %v", inv.Name, err)
		}
		defer client.Close()

		profile, err := registry.Lookup(inv.Series)
		if err != nil {
			log.Fatalf("unknown series (inverter=%s): %v", inv.Name, err)
		}

		if err := pub.PublishDiscovery(inv.Name, profile); err != nil {
			log.Fatalf("discovery publish failed (inverter=%s): %v", inv.Name, err)
		}

		// ---- settings bridge ----
		mgr := control.New(inv.Name, profile, client)
		if err := pub.SubscribeCommands(inv.Name, func(inverter, setting string, value uint16) error {
			if err := mgr.Set(setting, value); err != nil {
				return err
			}
			return publishSettings(pub, inverter, mgr)
		}); err != nil {
			log.Fatalf("command subscribe failed (inverter=%s): %v", inv.Name, err)
		}

		if err := mgr.Refresh(); err != nil {
			log.WithField("inverter", inv.Name).WithError(err).Warn("initial settings read failed")
		} else if err := publishSettings(pub, inv.Name, mgr); err != nil {
			log.WithField("inverter", inv.Name).WithError(err).Warn("settings publish failed")
		}

		// ---- channel between poller and publisher ----
		out := make(chan poller.Record)

		// Orchestrator: delivers records, tracks connectivity transitions.
		go func(name string, profile *registry.Profile) {
			online := true
			for {
				select {
				case <-ctx.Done():
					return

				case rec := <-out:
					metrics.Observe(rec)

					if rec.Online != online {
						online = rec.Online
						entry := log.WithField("inverter", name)
						if online {
							entry.Info("inverter back online")
						} else {
							entry.WithError(rec.Err).Warn("inverter not responding")
						}
					}

					if err := pub.PublishState(profile, rec); err != nil {
						log.WithField("inverter", name).WithError(err).Error("state publish failed")
					}
				}
			}
		}(inv.Name, profile)

		// poller producer
		go p.Run(ctx, out)

		log.WithFields(log.Fields{
			"inverter": inv.Name,
			"model":    profile.Name,
			"phases":   profile.Phases,
			"battery":  profile.HasBattery,
			"interval": inv.ScanInterval,
		}).Info("pipeline started")
	}

	<-ctx.Done()
	log.Info("shutting down")
}

func publishSettings(pub *publish.Publisher, inverter string, mgr *control.Manager) error {
	values := make(map[string]uint16)
	for _, s := range mgr.Settings() {
		v, err := mgr.Get(s.Name)
		if err != nil {
			continue
		}
		values[s.Name] = v
	}
	return pub.PublishSettings(inverter, values)
}
