package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/matst80/slask-delivery/pkg/messaging"
	"github.com/matst80/slask-delivery/pkg/schedule"
	"github.com/matst80/slask-delivery/pkg/storage"
)

/*
 * Admin mutations rewrite the whole snapshot: load the current config,
 * apply the change, persist, swap the in-memory copy and broadcast. The
 * operator tooling is low-volume so snapshot rewrites are fine.
 */

func (ws *WebServer) mutate(w http.ResponseWriter, notice messaging.ChangeNotice, apply func(cfg *storage.ScheduleConfig)) {
	cfg, err := ws.Config()
	if err != nil {
		cfg = &storage.ScheduleConfig{}
	}
	// Clone before applying so concurrent readers never see a half
	// mutated snapshot.
	next := storage.ScheduleConfig{
		Cities:    slices.Clone(cfg.Cities),
		TimeSlots: slices.Clone(cfg.TimeSlots),
		DateRules: slices.Clone(cfg.DateRules),
		SlotRules: slices.Clone(cfg.SlotRules),
	}
	apply(&next)
	if err := ws.Storage.Save(&next); err != nil {
		http.Error(w, "Error saving config", http.StatusInternalServerError)
		return
	}
	ws.SetConfig(&next)
	ws.notify(notice)
	w.WriteHeader(http.StatusOK)
}

func pathId(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// HandleGetConfig returns the full snapshot for the admin UI.
func (ws *WebServer) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := ws.Config()
	if err != nil {
		http.Error(w, "Schedule config not loaded", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleUpsertCity creates or replaces one delivery city.
func (ws *WebServer) HandleUpsertCity(w http.ResponseWriter, r *http.Request) {
	var city schedule.DeliveryCity
	if err := json.NewDecoder(r.Body).Decode(&city); err != nil || city.Id == 0 {
		http.Error(w, "Invalid city", http.StatusBadRequest)
		return
	}
	if city.CutoffTime != "" {
		if _, err := schedule.ParseClock(city.CutoffTime); err != nil {
			http.Error(w, "Invalid cutoff time", http.StatusBadRequest)
			return
		}
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.CitiesChanged, EntityId: city.Id}, func(cfg *storage.ScheduleConfig) {
		for i, existing := range cfg.Cities {
			if existing.Id == city.Id {
				cfg.Cities[i] = city
				return
			}
		}
		cfg.Cities = append(cfg.Cities, city)
	})
}

// HandleDeleteCity removes a city; its city-scoped rules stay behind but
// stop matching anything.
func (ws *WebServer) HandleDeleteCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		http.Error(w, "Invalid city id", http.StatusBadRequest)
		return
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.CitiesChanged, EntityId: id}, func(cfg *storage.ScheduleConfig) {
		kept := make([]schedule.DeliveryCity, 0, len(cfg.Cities))
		for _, city := range cfg.Cities {
			if city.Id != id {
				kept = append(kept, city)
			}
		}
		cfg.Cities = kept
	})
}

// HandleUpsertTimeSlot creates or replaces one time slot.
func (ws *WebServer) HandleUpsertTimeSlot(w http.ResponseWriter, r *http.Request) {
	var slot schedule.TimeSlot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil || slot.Id == 0 {
		http.Error(w, "Invalid time slot", http.StatusBadRequest)
		return
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.TimeSlotsChanged, EntityId: slot.Id}, func(cfg *storage.ScheduleConfig) {
		for i, existing := range cfg.TimeSlots {
			if existing.Id == slot.Id {
				cfg.TimeSlots[i] = slot
				return
			}
		}
		cfg.TimeSlots = append(cfg.TimeSlots, slot)
	})
}

// HandleDeleteTimeSlot removes a slot and every rule scoped to it.
func (ws *WebServer) HandleDeleteTimeSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r)
	if !ok {
		http.Error(w, "Invalid slot id", http.StatusBadRequest)
		return
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.TimeSlotsChanged, EntityId: id}, func(cfg *storage.ScheduleConfig) {
		slots := make([]schedule.TimeSlot, 0, len(cfg.TimeSlots))
		for _, slot := range cfg.TimeSlots {
			if slot.Id != id {
				slots = append(slots, slot)
			}
		}
		cfg.TimeSlots = slots
		rules := make([]schedule.SlotDisableRule, 0, len(cfg.SlotRules))
		for _, rule := range cfg.SlotRules {
			if rule.TimeSlotId != id {
				rules = append(rules, rule)
			}
		}
		cfg.SlotRules = rules
	})
}

func validRuleRange(start, end string) bool {
	s, err := schedule.ParseDate(start)
	if err != nil {
		return false
	}
	if end == "" {
		return true
	}
	e, err := schedule.ParseDate(end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}

// HandleAddDateRule appends a date disable rule, assigning it an id.
func (ws *WebServer) HandleAddDateRule(w http.ResponseWriter, r *http.Request) {
	var rule schedule.DateDisableRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		http.Error(w, "Invalid rule", http.StatusBadRequest)
		return
	}
	if !validRuleRange(rule.StartDate, rule.EndDate) {
		http.Error(w, "Invalid rule date range", http.StatusBadRequest)
		return
	}
	if rule.RuleId == "" {
		rule.RuleId = uuid.NewString()
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.DateRulesChanged, RuleId: rule.RuleId}, func(cfg *storage.ScheduleConfig) {
		cfg.DateRules = append(cfg.DateRules, rule)
	})
}

// HandleDeleteDateRule removes a date rule by its assigned id.
func (ws *WebServer) HandleDeleteDateRule(w http.ResponseWriter, r *http.Request) {
	ruleId := r.PathValue("id")
	if ruleId == "" {
		http.Error(w, "Invalid rule id", http.StatusBadRequest)
		return
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.DateRulesChanged, RuleId: ruleId}, func(cfg *storage.ScheduleConfig) {
		kept := make([]schedule.DateDisableRule, 0, len(cfg.DateRules))
		for _, rule := range cfg.DateRules {
			if rule.RuleId != ruleId {
				kept = append(kept, rule)
			}
		}
		cfg.DateRules = kept
	})
}

// HandleAddSlotRule appends a slot disable rule, assigning it an id.
func (ws *WebServer) HandleAddSlotRule(w http.ResponseWriter, r *http.Request) {
	var rule schedule.SlotDisableRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil || rule.TimeSlotId == 0 {
		http.Error(w, "Invalid rule", http.StatusBadRequest)
		return
	}
	if !validRuleRange(rule.StartDate, rule.EndDate) {
		http.Error(w, "Invalid rule date range", http.StatusBadRequest)
		return
	}
	if rule.RuleId == "" {
		rule.RuleId = uuid.NewString()
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.SlotRulesChanged, RuleId: rule.RuleId}, func(cfg *storage.ScheduleConfig) {
		cfg.SlotRules = append(cfg.SlotRules, rule)
	})
}

// HandleDeleteSlotRule removes a slot rule by its assigned id.
func (ws *WebServer) HandleDeleteSlotRule(w http.ResponseWriter, r *http.Request) {
	ruleId := r.PathValue("id")
	if ruleId == "" {
		http.Error(w, "Invalid rule id", http.StatusBadRequest)
		return
	}
	ws.mutate(w, messaging.ChangeNotice{Topic: messaging.SlotRulesChanged, RuleId: ruleId}, func(cfg *storage.ScheduleConfig) {
		kept := make([]schedule.SlotDisableRule, 0, len(cfg.SlotRules))
		for _, rule := range cfg.SlotRules {
			if rule.RuleId != ruleId {
				kept = append(kept, rule)
			}
		}
		cfg.SlotRules = kept
	})
}
