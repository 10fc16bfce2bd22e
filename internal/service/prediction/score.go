package prediction

import (
	"math"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

// decayBand holds the tolerance and outer bound of one variable's score
// decay. Within the tolerance the score is 1.0; it falls linearly to 0.0 at
// the outer bound and is clamped there.
type decayBand struct {
	tolerance float64
	bound     float64
}

var (
	temperatureBand   = decayBand{tolerance: 2, bound: 10}
	humidityBand      = decayBand{tolerance: 0.05, bound: 0.30}
	soilMoistureBand  = decayBand{tolerance: 0.05, bound: 0.35}
	precipitationBand = decayBand{tolerance: 1, bound: 10}
	// Snow only scores 1.0 on an exact match; any mismatch decays sharply.
	snowBand = decayBand{tolerance: 0, bound: 1}
)

// Status weights per variable, summing to 1.0.
const (
	weightRootSoilMoisture  = 0.30
	weightTopSoilMoisture   = 0.20
	weightTemperature       = 0.20
	weightSoilTemperature   = 0.10
	weightHumidity          = 0.10
	weightPrecipitation     = 0.08
	weightSnowPrecipitation = 0.02
)

func (b decayBand) score(predicted, baseline float64) float64 {
	diff := math.Abs(predicted - baseline)
	if diff <= b.tolerance {
		return 1.0
	}
	if diff >= b.bound {
		return 0.0
	}
	return (b.bound - diff) / (b.bound - b.tolerance)
}

// SuitabilityStatus computes the weighted 0-1 score of a forecast day against
// the crop baseline. The delegate model computes this itself from the same
// specification; this implementation backfills days where the model omitted
// the status and pins down the formula for tests.
func SuitabilityStatus(baseline models.CropBaseline, data models.PredictionData) float64 {
	status := weightRootSoilMoisture*soilMoistureBand.score(data.RootSoilMoisture, baseline.RootSoilMoisture) +
		weightTopSoilMoisture*soilMoistureBand.score(data.TopSoilMoisture, baseline.TopSoilMoisture) +
		weightTemperature*temperatureBand.score(data.Temperature, baseline.Temperature) +
		weightSoilTemperature*temperatureBand.score(data.SoilTemperature, baseline.SoilTemperature) +
		weightHumidity*humidityBand.score(data.Humidity, baseline.Humidity) +
		weightPrecipitation*precipitationBand.score(data.Precipitation, baseline.RainPrecipitation) +
		weightSnowPrecipitation*snowBand.score(data.SnowPrecipitation, baseline.SnowPrecipitation)

	return ClampStatus(status)
}

// ClampStatus rounds a status to two decimals and clamps it to [0.00, 1.00].
func ClampStatus(status float64) float64 {
	status = math.Round(status*100) / 100
	if status < 0 {
		return 0
	}
	if status > 1 {
		return 1
	}
	return status
}
