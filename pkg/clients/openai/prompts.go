package openai

import (
	"encoding/json"
	"fmt"
)

const baselineSystemPrompt = "You are an expert agricultural scientist and agronomist with extensive " +
	"knowledge of crop cultivation requirements. Provide precise, science-based recommendations for " +
	"optimal growing conditions based on peer-reviewed research and established agricultural practices."

const forecastSystemPrompt = "You are a meteorological prediction assistant specialized in NASA POWER datasets."

func buildBaselinePrompt(cropKey string) string {
	return fmt.Sprintf(`Provide optimal environmental conditions for %[1]s at the initial planting/transplanting stage.

Focus specifically on the best conditions needed during the first few weeks after planting or transplanting seedlings.
This is the critical establishment period when plants are most vulnerable and need optimal conditions to develop strong root systems.

Provide the ideal conditions with precise numerical values in the following units:

- crop_name: Simple common name (e.g., if input is "tomato", return "Tomato")
- temperature: Air temperature in degrees Celsius - single optimal value
- humidity: Relative humidity as decimal (0.0-1.0, where 1.0 = fully saturated air)
- root_soil_moisture: Root zone soil wetness as decimal (0.0-1.0, where 1.0 = fully saturated)
- top_soil_moisture: Surface soil wetness as decimal (0.0-1.0, where 1.0 = fully saturated)
- soil_temperature: Soil temperature in degrees Celsius - single optimal value
- rain_precipitation: Daily rainfall in millimeters per day (mm/day) - single optimal value
- snow_precipitation: Daily snowfall in millimeters per day (mm/day) - usually 0.0 for most crops

Base your recommendations on:
1. Scientific research on crop establishment phases
2. Commercial transplanting best practices
3. Conditions that minimize transplant shock
4. Early-stage growth requirements specific to %[1]s

OUTPUT FORMAT
Return only a valid JSON object with this exact structure, no markdown, no extra text:
{
  "crop_name": "...",
  "temperature": NN.NN,
  "humidity": NN.NN,
  "root_soil_moisture": NN.NN,
  "top_soil_moisture": NN.NN,
  "soil_temperature": NN.NN,
  "rain_precipitation": NN.NN,
  "snow_precipitation": NN.NN
}`, cropKey)
}

func buildForecastPrompt(req ForecastRequest) string {
	baselineJSON, _ := json.Marshal(req.Baseline)

	return fmt.Sprintf(`DATA STRUCTURE
The dataset follows this structure:
{
  "properties": {
    "parameter": {
      "T2M_MAX": { "20190101": 32.04, ... },
      "T2M_MIN": { "20190101": 19.31, ... },
      "RH2M": { "20190101": 75.22, ... },
      "PRECTOTCORR": { "20190101": 3.34, ... },
      "GWETROOT": { "20190101": 0.64, ... },
      "GWETTOP": { "20190101": 0.62, ... },
      "PRECSNO": { "20190101": 0.00, ... },
      "TSOIL5": { "20190101": 20.82, ... }
    }
  }
}

TASK
Using the provided dataset (about 5 recent years of data), generate a daily climatological forecast
for the requested month and for the next calendar year (year + 1), then score each day against the
provided crop baseline.

FORECAST METHOD
1. Select all daily entries from properties.parameter where the date (YYYYMMDD) corresponds to the requested month (MM).
2. For each day-of-month (01-31), calculate the mean of each variable across all available years:
   - temperature = mean of ((T2M_MAX + T2M_MIN) / 2)
   - humidity = mean(RH2M) / 100  (convert %% to a 0-1 scale)
   - root_soil_moisture = mean of GWETROOT
   - top_soil_moisture = mean of GWETTOP
   - soil_temperature = mean of TSOIL5
   - precipitation = mean of PRECTOTCORR
   - snow_precipitation = mean of PRECSNO
3. Handle missing data: if some years lack a value for a given day, average only available data.
   If a day is missing entirely, use the mean of the whole month for that variable.
4. The forecasted dates must correspond to the next year (YYYY + 1) for the same month.

SCORING METHOD
For each forecast day, compute a per-variable score from the absolute difference between the
predicted value and the crop baseline value:
- score = 1.0 when the difference is within the tolerance band
- score decays linearly from 1.0 at the tolerance to 0.0 at the outer bound
- score is clamped to [0.0, 1.0], never negative
Tolerance / outer bound per variable:
- temperature: 2 / 10 (degrees C)
- soil_temperature: 2 / 10 (degrees C)
- humidity: 0.05 / 0.30 (0-1 scale)
- root_soil_moisture: 0.05 / 0.35
- top_soil_moisture: 0.05 / 0.35
- precipitation: 1 / 10 (mm)
- snow_precipitation: exact-zero difference scores 1.0, any mismatch decays sharply (outer bound 1 mm)
The final status is the weighted sum of the per-variable scores:
- root_soil_moisture: 0.30
- top_soil_moisture: 0.20
- temperature: 0.20
- soil_temperature: 0.10
- humidity: 0.10
- precipitation: 0.08
- snow_precipitation: 0.02
Round status to two decimals and clamp to [0.00, 1.00].

CROP BASELINE
%s

OUTPUT FORMAT
Return only a valid JSON array with this exact structure:

[
  {
    "date": "YYYYMMDD",
    "status": NN.NN,
    "prediction_data": {
      "temperature": NN.NN,
      "humidity": NN.NN,
      "root_soil_moisture": NN.NN,
      "top_soil_moisture": NN.NN,
      "soil_temperature": NN.NN,
      "precipitation": NN.NN,
      "snow_precipitation": NN.NN
    }
  },
  ...
]

RULES
- No markdown, no extra text - JSON array only.
- Round all numeric outputs to two decimals, no units or text.
- If the requested month is not present in the dataset, return an empty array [].
- Always forecast for next calendar year (input year + 1).

ACTUAL INPUT
{
  "month": "%s",
  "year": "%d",
  "data": %s
}`, string(baselineJSON), req.MonthNumber, req.Year, string(req.DatasetJSON))
}
