// core/scenario_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signalsfoundry/concentrator-simulator/model"
)

// Scenario is a small summary of what was loaded from JSON. It's
// mainly useful for logging from main().
type Scenario struct {
	Installations   []model.Installation
	InstallationIDs []string
	LensCount       int
}

// internal JSON shapes – kept unexported so we're free to evolve them.
type scenarioJSON struct {
	Installations []installationJSON `json:"installations"`
}

type installationJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Site     siteJSON        `json:"site"`
	Lenses   []lensJSON      `json:"lenses"`
	Receiver receiverJSON    `json:"receiver"`
	Light    lightSourceJSON `json:"light"`
}

type siteJSON struct {
	LatitudeDeg  float64 `json:"latitude_deg"`
	LongitudeDeg float64 `json:"longitude_deg"`
	ElevationM   float64 `json:"elevation_m"`
}

type lensJSON struct {
	ID            string  `json:"id"`
	Aperture      float64 `json:"aperture"`
	FocalLength   float64 `json:"focal_length"`
	Position      float64 `json:"position"`
	Transmittance float64 `json:"transmittance"`
}

type receiverJSON struct {
	Shape      string  `json:"shape"` // "rectangular" | "circular"
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Diameter   float64 `json:"diameter"`
	Efficiency float64 `json:"efficiency"`
	Position   float64 `json:"position"`
}

type lightSourceJSON struct {
	Intensity      float64 `json:"intensity"`
	ZenithAngleDeg float64 `json:"zenith_angle_deg"`
}

// LoadScenario reads a JSON scenario from r and returns the
// installations it describes. Lens and installation IDs come straight
// from the file; the engine never mints its own.
//
// It fails only on JSON/structural errors (unknown receiver shape,
// missing IDs). Numeric-range problems are left to the Validate*
// functions so callers can report them all at once.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var payload scenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadScenario: decode failed: %w", err)
	}

	result := &Scenario{
		Installations:   make([]model.Installation, 0, len(payload.Installations)),
		InstallationIDs: make([]string, 0, len(payload.Installations)),
	}

	for i, inst := range payload.Installations {
		if inst.ID == "" {
			return nil, fmt.Errorf("LoadScenario: installation %d has no ID", i)
		}

		lenses := make([]model.Lens, 0, len(inst.Lenses))
		for j, l := range inst.Lenses {
			if l.ID == "" {
				return nil, fmt.Errorf("LoadScenario: installation %q lens %d has no ID", inst.ID, j)
			}
			lenses = append(lenses, model.NewLens(l.ID, l.Aperture, l.FocalLength, l.Position, l.Transmittance))
		}

		receiver, err := receiverFromJSON(inst.Receiver)
		if err != nil {
			return nil, fmt.Errorf("LoadScenario: installation %q: %w", inst.ID, err)
		}

		result.Installations = append(result.Installations, model.Installation{
			ID:   inst.ID,
			Name: inst.Name,
			Site: model.Site{
				LatitudeDeg:  inst.Site.LatitudeDeg,
				LongitudeDeg: inst.Site.LongitudeDeg,
				ElevationM:   inst.Site.ElevationM,
			},
			System: model.NewOpticalSystem(lenses, receiver),
			Source: model.LightSource{
				Intensity:      inst.Light.Intensity,
				ZenithAngleDeg: inst.Light.ZenithAngleDeg,
			},
		})
		result.InstallationIDs = append(result.InstallationIDs, inst.ID)
		result.LensCount += len(lenses)
	}

	return result, nil
}

func receiverFromJSON(r receiverJSON) (model.PhotovoltaicCell, error) {
	switch strings.ToLower(r.Shape) {
	case "rectangular":
		return model.NewRectangularCell(r.Width, r.Height, r.Efficiency, r.Position), nil
	case "circular":
		return model.NewCircularCell(r.Diameter, r.Efficiency, r.Position), nil
	default:
		return model.PhotovoltaicCell{}, fmt.Errorf("unknown receiver shape %q", r.Shape)
	}
}
