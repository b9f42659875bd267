package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/slask-delivery/pkg/schedule"
)

// OptionsRequest asks for the earliest delivery date and the selectable
// dates for a cart in a city. GET requests carry city/days as query
// parameters; POST requests carry the whole struct (including the cart)
// as JSON.
type OptionsRequest struct {
	CityId uint                   `json:"city" schema:"city"`
	Days   int                    `json:"days" schema:"days,default:14"`
	Cart   []schedule.CartProduct `json:"cart" schema:"-"`
}

// SlotsRequest asks for per-slot availability on one date in a city.
type SlotsRequest struct {
	CityId uint   `json:"city" schema:"city"`
	Date   string `json:"date" schema:"date"`
}

// OptionsResponse is the options endpoint payload.
type OptionsResponse struct {
	CartDelay      int      `json:"cartDelay"`
	SameDay        bool     `json:"sameDay"`
	MinimumDate    string   `json:"minimumDate"`
	AvailableDates []string `json:"availableDates"`
}

// SlotsResponse is the slots endpoint payload.
type SlotsResponse struct {
	Date  string                `json:"date"`
	Slots []schedule.SlotStatus `json:"slots"`
}

func decodeQuery(query url.Values, result any) error {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder.Decode(result, query)
}

// GetOptionsRequest decodes from the query string for GET and from the
// JSON body otherwise.
func GetOptionsRequest(r *http.Request, result *OptionsRequest) error {
	if r.Method == http.MethodGet {
		return decodeQuery(r.URL.Query(), result)
	}
	return json.NewDecoder(r.Body).Decode(result)
}

func GetSlotsRequest(r *http.Request, result *SlotsRequest) error {
	if r.Method == http.MethodGet {
		return decodeQuery(r.URL.Query(), result)
	}
	return json.NewDecoder(r.Body).Decode(result)
}
