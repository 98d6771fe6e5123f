package vehicle

import (
	"regexp"
	"sort"
	"strconv"
)

// fallbackDailyRate is used when the upstream price string carries no
// parsable number.
const fallbackDailyRate = 45

// Vehicle is the catalog entity, already normalized from the loosely typed
// upstream car record. Fetched per request, never mutated locally.
type Vehicle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Make         string  `json:"make"`
	Description  string  `json:"description"`
	Color        string  `json:"color"`
	Year         int     `json:"year"`
	VIN          string  `json:"vin"`
	Availability bool    `json:"availability"`
	DailyRate    float64 `json:"dailyRate"`
	Seats        int     `json:"seats"`
	Doors        int     `json:"doors"`
	Fuel         string  `json:"fuel"`
}

// Record is the wire shape served by the cars source. Price arrives as a
// currency-formatted string.
type Record struct {
	ID           int    `json:"id"`
	Car          string `json:"car"`
	CarMake      string `json:"car_make"`
	CarModel     string `json:"car_model"`
	CarColor     string `json:"car_color"`
	CarModelYear int    `json:"car_model_year"`
	CarVIN       string `json:"car_vin"`
	Price        string `json:"price"`
	Availability bool   `json:"availability"`
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ParseDailyRate strips currency formatting from an upstream price string.
func ParseDailyRate(price string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(price, "")
	rate, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || rate == 0 {
		return fallbackDailyRate
	}
	return rate
}

// FromRecord normalizes an upstream car record. Seats, doors and fuel are
// deterministic functions of id parity, exactly as the source derives them.
func FromRecord(r Record) Vehicle {
	fuel := "Diesel"
	if r.ID%2 == 0 {
		fuel = "Petrol"
	}
	return Vehicle{
		ID:           r.ID,
		Name:         r.CarModel,
		Make:         r.CarMake,
		Description:  r.Car,
		Color:        r.CarColor,
		Year:         r.CarModelYear,
		VIN:          r.CarVIN,
		Availability: r.Availability,
		DailyRate:    ParseDailyRate(r.Price),
		Seats:        4 + r.ID%2,
		Doors:        3 + r.ID%2,
		Fuel:         fuel,
	}
}

// Descriptor is the vehicle string stored on reservation records:
// model followed by display name.
func (v Vehicle) Descriptor() string {
	return v.Make + " " + v.Name
}

// Options are the filter menu choices, always derived from the unfiltered
// collection so menus reflect the full inventory.
type Options struct {
	Fuels  []string `json:"fuels"`
	Doors  []int    `json:"doors"`
	Makes  []string `json:"makes"`
	Models []string `json:"models"`
	Colors []string `json:"colors"`
	Years  []int    `json:"years"`
}

// DeriveOptions collects the distinct categorical values across vehicles,
// sorted for stable menus.
func DeriveOptions(vehicles []Vehicle) Options {
	fuels := map[string]struct{}{}
	doors := map[int]struct{}{}
	makes := map[string]struct{}{}
	models := map[string]struct{}{}
	colors := map[string]struct{}{}
	years := map[int]struct{}{}

	for _, v := range vehicles {
		fuels[v.Fuel] = struct{}{}
		doors[v.Doors] = struct{}{}
		makes[v.Make] = struct{}{}
		models[v.Name] = struct{}{}
		colors[v.Color] = struct{}{}
		years[v.Year] = struct{}{}
	}

	return Options{
		Fuels:  sortedStrings(fuels),
		Doors:  sortedInts(doors),
		Makes:  sortedStrings(makes),
		Models: sortedStrings(models),
		Colors: sortedStrings(colors),
		Years:  sortedInts(years),
	}
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
