package prediction

import "github.com/orionbeers/planting-backend/pkg/clients/nasapower"

// monthNumbers maps request month names to the MM component of YYYYMMDD dates.
var monthNumbers = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
}

// monthOrder lists month names in calendar order for the continuation path.
var monthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthNumber resolves a month name to its "01".."12" code.
func MonthNumber(month string) (string, bool) {
	number, ok := monthNumbers[month]
	return number, ok
}

// NextMonth returns the month following the given one, wrapping December to
// January. Unknown names come back unchanged.
func NextMonth(month string) string {
	for i, name := range monthOrder {
		if name == month {
			return monthOrder[(i+1)%len(monthOrder)]
		}
	}
	return month
}

// FilterDatasetByMonth returns a copy of the dataset containing only entries
// whose date falls in the named month. An unknown month name yields an empty
// dataset; the caller decides whether that is an error. The input is never
// mutated.
func FilterDatasetByMonth(dataset *nasapower.Dataset, month string) *nasapower.Dataset {
	filtered := &nasapower.Dataset{
		Properties: nasapower.Properties{Parameter: map[string]map[string]float64{}},
	}

	if dataset == nil {
		return filtered
	}

	number, ok := MonthNumber(month)
	if !ok {
		return filtered
	}

	for variable, series := range dataset.Properties.Parameter {
		kept := map[string]float64{}
		for date, value := range series {
			if len(date) == 8 && date[4:6] == number {
				kept[date] = value
			}
		}
		filtered.Properties.Parameter[variable] = kept
	}

	return filtered
}

// DatasetIsEmpty reports whether the filtered dataset holds no daily values.
func DatasetIsEmpty(dataset *nasapower.Dataset) bool {
	if dataset == nil {
		return true
	}
	for _, series := range dataset.Properties.Parameter {
		if len(series) > 0 {
			return false
		}
	}
	return true
}
