package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/signalsfoundry/concentrator-simulator/core"
	"github.com/signalsfoundry/concentrator-simulator/internal/logging"
	"github.com/signalsfoundry/concentrator-simulator/internal/observability"
	"github.com/signalsfoundry/concentrator-simulator/kb"
	"github.com/signalsfoundry/concentrator-simulator/model"
	"github.com/signalsfoundry/concentrator-simulator/timectrl"
)

func main() {
	scenarioPath := flag.String("scenario", "configs/solar_scenario.json", "path to the JSON scenario file")
	startDate := flag.String("start", "", "simulated start instant (RFC3339); defaults to now")
	duration := flag.Duration("duration", 12*time.Hour, "total simulated duration")
	tick := flag.Duration("tick", 10*time.Minute, "simulated tick interval")
	accelerated := flag.Bool("accelerated", true, "run in accelerated mode (vs real-time)")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewPowerCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}
	metricsSrv := serveMetrics(*metricsAddr, collector, log)

	scenario := loadScenario(ctx, log, *scenarioPath)

	store := kb.NewKnowledgeBase()
	trackers := make(map[string]core.SunTracker, len(scenario.Installations))
	for i := range scenario.Installations {
		inst := &scenario.Installations[i]

		if violations := core.ValidateOpticalSystem(inst.System); len(violations) > 0 {
			for _, v := range violations {
				log.Warn(ctx, "scenario validation failure",
					logging.String("installation", inst.ID),
					logging.String("violation", v),
				)
			}
			log.Warn(ctx, "skipping invalid installation", logging.String("installation", inst.ID))
			continue
		}

		if err := store.AddInstallation(inst); err != nil {
			log.Error(ctx, "failed to register installation",
				logging.String("installation", inst.ID),
				logging.String("error", err.Error()),
			)
			os.Exit(1)
		}
		trackers[inst.ID] = core.SunTracker{
			LatitudeDeg:  inst.Site.LatitudeDeg,
			LongitudeDeg: inst.Site.LongitudeDeg,
			ElevationM:   inst.Site.ElevationM,
		}
	}

	active := store.ListInstallations()
	collector.SetScenarioCounts(len(active), scenario.LensCount)
	log.Info(ctx, "scenario loaded",
		logging.String("path", *scenarioPath),
		logging.Int("installations", len(active)),
		logging.Int("lenses", scenario.LensCount),
	)
	if len(active) == 0 {
		log.Error(ctx, "no valid installations to simulate")
		os.Exit(1)
	}

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	start := time.Now().UTC()
	if *startDate != "" {
		parsed, err := time.Parse(time.RFC3339, *startDate)
		if err != nil {
			log.Error(ctx, "invalid -start value", logging.String("error", err.Error()))
			os.Exit(1)
		}
		start = parsed.UTC()
	}
	tc := timectrl.NewTimeController(start, *tick, mode)

	tc.AddListener(func(simTime time.Time) {
		for _, inst := range store.ListInstallations() {
			tracker := trackers[inst.ID]

			source := model.LightSource{
				Intensity:      tracker.DirectIntensityAt(simTime),
				ZenithAngleDeg: tracker.ZenithAt(simTime),
			}
			if err := store.UpdateLightSource(inst.ID, source); err != nil {
				log.Warn(ctx, "failed to update light source",
					logging.String("installation", inst.ID),
					logging.String("error", err.Error()),
				)
				continue
			}
			collector.RecordSunZenith(inst.ID, source.ZenithAngleDeg)

			// Night: nothing to concentrate, skip the engine but keep
			// the gauges honest.
			if source.Intensity <= 0 {
				collector.RecordEvaluation(inst.ID, model.PowerCalculationResult{IsValid: true})
				continue
			}

			result := core.CalculatePower(inst.System, source)
			collector.RecordEvaluation(inst.ID, result)

			fmt.Printf("[%s] %-16s zenith=%5.1f° I=%6.1f W/m² in=%7.3f W out=%7.3f W eff=%5.3f\n",
				simTime.Format(time.RFC3339),
				inst.ID,
				source.ZenithAngleDeg,
				source.Intensity,
				result.InputPower,
				result.OutputPower,
				result.SystemEfficiency,
			)
		}
	})

	fmt.Printf("Starting simulation: start=%s duration=%s tick=%s mode=%v\n",
		start.Format(time.RFC3339), *duration, *tick, mode)
	done := tc.Start(*duration)
	<-done
	fmt.Println("Simulation complete.")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

func serveMetrics(addr string, collector *observability.PowerCollector, log logging.Logger) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()
	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}

func loadScenario(ctx context.Context, log logging.Logger, path string) *core.Scenario {
	f, err := os.Open(path)
	if err != nil {
		log.Error(ctx, "failed to open scenario", logging.String("path", path), logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	scenario, err := core.LoadScenario(f)
	if err != nil {
		log.Error(ctx, "failed to parse scenario", logging.String("path", path), logging.String("error", err.Error()))
		os.Exit(1)
	}
	return scenario
}
