package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/signalsfoundry/concentrator-simulator/core"
	"github.com/signalsfoundry/concentrator-simulator/internal/logging"
	"github.com/signalsfoundry/concentrator-simulator/internal/observability"
	"github.com/signalsfoundry/concentrator-simulator/model"
)

// anglesweep renders the incidence-angle response curve of every valid
// installation in a scenario file, as an aligned table or CSV.
func main() {
	scenarioPath := flag.String("scenario", "configs/solar_scenario.json", "path to the JSON scenario file")
	startDeg := flag.Float64("start", 0, "sweep start angle (degrees)")
	endDeg := flag.Float64("end", 60, "sweep end angle (degrees)")
	stepDeg := flag.Float64("step", 5, "sweep step (degrees, > 0)")
	intensity := flag.Float64("intensity", 1000, "light intensity (W/m²)")
	asCSV := flag.Bool("csv", false, "emit CSV instead of an aligned table")
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

	f, err := os.Open(*scenarioPath)
	if err != nil {
		log.Error(ctx, "failed to open scenario", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
		os.Exit(1)
	}
	scenario, err := core.LoadScenario(f)
	f.Close()
	if err != nil {
		log.Error(ctx, "failed to parse scenario", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
		os.Exit(1)
	}

	tracer := otel.Tracer("anglesweep")

	exitCode := 0
	for _, inst := range scenario.Installations {
		if violations := core.ValidateOpticalSystem(inst.System); len(violations) > 0 {
			for _, v := range violations {
				log.Warn(ctx, "scenario validation failure",
					logging.String("installation", inst.ID),
					logging.String("violation", v),
				)
			}
			exitCode = 1
			continue
		}

		_, span := tracer.Start(ctx, "SweepAngle")
		span.SetAttributes(
			attribute.String("installation.id", inst.ID),
			attribute.Float64("sweep.start_deg", *startDeg),
			attribute.Float64("sweep.end_deg", *endDeg),
			attribute.Float64("sweep.step_deg", *stepDeg),
		)
		began := time.Now()
		results := core.SweepAngle(inst.System, *intensity, *startDeg, *endDeg, *stepDeg)
		elapsed := time.Since(began)
		span.End()

		collector.ObserveSweep(inst.ID, elapsed.Seconds())
		log.Info(ctx, "sweep complete",
			logging.String("installation", inst.ID),
			logging.Int("points", len(results)),
			logging.String("elapsed", elapsed.String()),
		)

		if len(results) == 0 {
			log.Warn(ctx, "sweep produced no points; check the angle range and step",
				logging.String("installation", inst.ID))
			exitCode = 1
			continue
		}

		if *asCSV {
			printCSV(inst.ID, results)
		} else {
			printTable(inst, results)
		}
	}
	os.Exit(exitCode)
}

func printTable(inst model.Installation, results []model.AngleSweepResult) {
	name := inst.Name
	if name == "" {
		name = inst.ID
	}
	fmt.Printf("\n%s (%s)\n", name, inst.ID)
	fmt.Printf("%10s %16s %12s\n", "angle[°]", "output[W]", "efficiency")
	for _, r := range results {
		fmt.Printf("%10.2f %16.6f %12.4f\n", r.AngleDeg, r.OutputPower, r.SystemEfficiency)
	}
}

func printCSV(installationID string, results []model.AngleSweepResult) {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	_ = w.Write([]string{"installation", "angle_deg", "output_power_w", "system_efficiency"})
	for _, r := range results {
		_ = w.Write([]string{
			installationID,
			strconv.FormatFloat(r.AngleDeg, 'f', -1, 64),
			strconv.FormatFloat(r.OutputPower, 'g', -1, 64),
			strconv.FormatFloat(r.SystemEfficiency, 'g', -1, 64),
		})
	}
}
