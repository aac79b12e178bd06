// Package footprint computes the carbon estimates shown by the calculator
// section and persists them as history.
package footprint

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantgrid/verdant/internal/database"
)

// Emission factors, kg CO2e. Grid electricity is a blended national average;
// driving assumes a petrol passenger car; flights assume a short-haul return.
const (
	FactorGridKgPerKWh      = 0.393
	FactorCarKgPerKm        = 0.171
	FactorFlightKgPerFlight = 255.0
)

// Periods used to annualise the raw inputs.
const (
	monthsPerYear = 12
	weeksPerYear  = 52
)

// Inputs are the user-entered consumption figures.
type Inputs struct {
	KWhPerMonth    float64
	KmPerWeek      float64
	FlightsPerYear float64
}

// Validate rejects negative figures. Zero is fine everywhere.
func (in Inputs) Validate() error {
	if in.KWhPerMonth < 0 {
		return fmt.Errorf("electricity use cannot be negative")
	}
	if in.KmPerWeek < 0 {
		return fmt.Errorf("distance driven cannot be negative")
	}
	if in.FlightsPerYear < 0 {
		return fmt.Errorf("flights cannot be negative")
	}
	return nil
}

// Estimate is one computed footprint, in annual kg CO2e per line item.
type Estimate struct {
	ID            string
	Inputs        Inputs
	ElectricityKg float64
	DrivingKg     float64
	FlightsKg     float64
	TotalKg       float64
	CreatedAt     time.Time
}

// Compute annualises the inputs against the factor table.
func Compute(in Inputs) Estimate {
	e := Estimate{
		ID:            uuid.NewString(),
		Inputs:        in,
		ElectricityKg: in.KWhPerMonth * monthsPerYear * FactorGridKgPerKWh,
		DrivingKg:     in.KmPerWeek * weeksPerYear * FactorCarKgPerKm,
		FlightsKg:     in.FlightsPerYear * FactorFlightKgPerFlight,
		CreatedAt:     database.Now(),
	}
	e.TotalKg = e.ElectricityKg + e.DrivingKg + e.FlightsKg
	return e
}

// Tonnes converts a kg figure for display.
func Tonnes(kg float64) float64 { return kg / 1000 }
