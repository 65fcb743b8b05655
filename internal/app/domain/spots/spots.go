// Package spots fetches raw wellness POIs for a city from the Overpass API.
package spots

import "context"

// Center is the center point Overpass reports for ways and relations.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is a raw Overpass record.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Coordinates prefers the element's own position over its center.
func (e Element) Coordinates() (lat, lon *float64) {
	lat, lon = e.Lat, e.Lon
	if e.Center != nil {
		if lat == nil {
			v := e.Center.Lat
			lat = &v
		}
		if lon == nil {
			v := e.Center.Lon
			lon = &v
		}
	}
	return lat, lon
}

// Tag returns the first non-empty value among keys.
func (e Element) Tag(keys ...string) string {
	for _, k := range keys {
		if v := e.Tags[k]; v != "" {
			return v
		}
	}
	return ""
}

// Fetcher returns raw POIs for a city. An empty result means "no data", never an error.
type Fetcher interface {
	FetchSpots(ctx context.Context, city string) []Element
}
