package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matst80/slask-delivery/pkg/schedule"
)

// HandleOptions computes the cart delay, the earliest legal delivery date
// and the selectable dates for the requested city. The reference instant
// is taken once per request so the response is internally consistent.
func (ws *WebServer) HandleOptions(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	optionRequests.Inc()
	var req OptionsRequest
	if err := GetOptionsRequest(r, &req); err != nil {
		http.Error(w, "Invalid options request", http.StatusBadRequest)
		return err
	}
	cfg, err := ws.Config()
	if err != nil {
		http.Error(w, "Schedule config not loaded", http.StatusServiceUnavailable)
		return err
	}
	city, ok := cfg.City(req.CityId)
	if !ok && req.CityId != 0 {
		http.Error(w, "Unknown city", http.StatusNotFound)
		return nil
	}
	if req.Days <= 0 {
		req.Days = DefaultDateWindow
	}

	now := time.Now()
	delay := schedule.CartDelay(req.Cart)
	minimum := schedule.MinimumDeliveryDate(city, now, delay)
	blocked := schedule.BlocklistFromRules(cfg.DateRules, req.CityId)

	return enc.Encode(OptionsResponse{
		CartDelay:      delay,
		SameDay:        schedule.SameDayAvailable(city, now),
		MinimumDate:    minimum.ISO(),
		AvailableDates: schedule.AvailableDates(minimum, req.Days, blocked),
	})
}

// HandleSlots resolves every configured time slot against the requested
// date and city.
func (ws *WebServer) HandleSlots(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	slotRequests.Inc()
	var req SlotsRequest
	if err := GetSlotsRequest(r, &req); err != nil {
		http.Error(w, "Invalid slots request", http.StatusBadRequest)
		return err
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return err
	}
	cfg, err := ws.Config()
	if err != nil {
		http.Error(w, "Schedule config not loaded", http.StatusServiceUnavailable)
		return err
	}

	return enc.Encode(SlotsResponse{
		Date:  date.ISO(),
		Slots: schedule.ResolveSlots(cfg.TimeSlots, date, req.CityId, cfg.SlotRules),
	})
}

// HandleValidateCheckout runs the field validators and reports the
// aggregate; it never rejects the HTTP request itself — the storefront
// decides what to do with an invalid result.
func (ws *WebServer) HandleValidateCheckout(w http.ResponseWriter, r *http.Request, enc *json.Encoder) error {
	var fields schedule.CheckoutFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid checkout fields", http.StatusBadRequest)
		return err
	}
	result := schedule.ValidateCheckout(fields)
	if result.Valid {
		checkoutValidations.WithLabelValues("valid").Inc()
	} else {
		checkoutValidations.WithLabelValues("invalid").Inc()
	}
	return enc.Encode(result)
}
