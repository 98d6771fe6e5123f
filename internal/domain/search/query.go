package search

import (
	"net/url"
	"strconv"
)

// ListQuery is the canonical query-string contract shared by the landing
// search form, the vehicle-list page, its filter form and its pagination
// links. Parsing is tolerant: absent or malformed values simply impose no
// constraint. Encoding is canonical so that parse(encode(q)) == q.
type ListQuery struct {
	Search Criteria
	Filter Filter
	Page   int
}

// ParseListQuery reads the open parameter set from a URL query.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		Search: Criteria{
			PickupLocation: values.Get("pickupLocation"),
			ReturnLocation: values.Get("returnLocation"),
			PickupDate:     values.Get("pickupDate"),
			PickupTime:     values.Get("pickupTime"),
			DropoffDate:    values.Get("dropoffDate"),
			DropoffTime:    values.Get("dropoffTime"),
		},
		Filter: Filter{
			Fuel:         optString(values, "fuel"),
			Doors:        optInt(values, "doors"),
			Make:         optString(values, "make"),
			Model:        optString(values, "model"),
			Color:        optString(values, "color"),
			Year:         optInt(values, "year"),
			Availability: optBool(values, "availability"),
			MinPrice:     optFloat(values, "minPrice"),
			MaxPrice:     optFloat(values, "maxPrice"),
		},
		Page: 1,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		q.Page = page
	}

	return q
}

// Values serializes the query, omitting unset fields and page 1.
func (q ListQuery) Values() url.Values {
	values := url.Values{}

	putString(values, "pickupLocation", q.Search.PickupLocation)
	putString(values, "returnLocation", q.Search.ReturnLocation)
	putString(values, "pickupDate", q.Search.PickupDate)
	putString(values, "pickupTime", q.Search.PickupTime)
	putString(values, "dropoffDate", q.Search.DropoffDate)
	putString(values, "dropoffTime", q.Search.DropoffTime)

	if q.Filter.Fuel != nil {
		values.Set("fuel", *q.Filter.Fuel)
	}
	if q.Filter.Doors != nil {
		values.Set("doors", strconv.Itoa(*q.Filter.Doors))
	}
	if q.Filter.Make != nil {
		values.Set("make", *q.Filter.Make)
	}
	if q.Filter.Model != nil {
		values.Set("model", *q.Filter.Model)
	}
	if q.Filter.Color != nil {
		values.Set("color", *q.Filter.Color)
	}
	if q.Filter.Year != nil {
		values.Set("year", strconv.Itoa(*q.Filter.Year))
	}
	if q.Filter.Availability != nil {
		values.Set("availability", strconv.FormatBool(*q.Filter.Availability))
	}
	if q.Filter.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*q.Filter.MinPrice, 'f', -1, 64))
	}
	if q.Filter.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*q.Filter.MaxPrice, 'f', -1, 64))
	}

	if q.Page > 1 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	return values
}

// WithPage returns a copy pointing at another page; every other parameter
// is preserved.
func (q ListQuery) WithPage(page int) ListQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// WithFilter replaces the filter set and drops back to page 1, the way a
// filter-form submission does.
func (q ListQuery) WithFilter(f Filter) ListQuery {
	q.Filter = f
	q.Page = 1
	return q
}

// Reset clears everything, yielding the bare list route.
func (q ListQuery) Reset() ListQuery {
	return ListQuery{Page: 1}
}

// Encode renders the query string without a leading "?"; empty when no
// parameter is set.
func (q ListQuery) Encode() string {
	return q.Values().Encode()
}

func putString(values url.Values, key, v string) {
	if v != "" {
		values.Set(key, v)
	}
}

func optString(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}

func optInt(values url.Values, key string) *int {
	v := values.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func optFloat(values url.Values, key string) *float64 {
	v := values.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func optBool(values url.Values, key string) *bool {
	switch values.Get(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
