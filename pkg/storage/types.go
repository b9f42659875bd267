package storage

import (
	"github.com/matst80/slask-delivery/pkg/schedule"
)

// ScheduleConfig is the full scheduling snapshot for one merchant: every
// active city, time slot and disable rule. The engine only ever sees an
// already-loaded snapshot; soft-deleted records are filtered out before
// the snapshot is written.
type ScheduleConfig struct {
	Cities    []schedule.DeliveryCity    `json:"cities"`
	TimeSlots []schedule.TimeSlot        `json:"timeSlots"`
	DateRules []schedule.DateDisableRule `json:"dateRules"`
	SlotRules []schedule.SlotDisableRule `json:"slotRules"`
}

// ConfigStorage loads and saves whole snapshots. Partial updates go
// through the admin layer which rewrites the snapshot atomically.
type ConfigStorage interface {
	Load() (*ScheduleConfig, error)
	Save(*ScheduleConfig) error
}

// City returns the city with the given id, if present.
func (c *ScheduleConfig) City(id uint) (schedule.DeliveryCity, bool) {
	for _, city := range c.Cities {
		if city.Id == id {
			return city, true
		}
	}
	return schedule.DeliveryCity{}, false
}

// Slot returns the time slot with the given id, if present.
func (c *ScheduleConfig) Slot(id uint) (schedule.TimeSlot, bool) {
	for _, slot := range c.TimeSlots {
		if slot.Id == id {
			return slot, true
		}
	}
	return schedule.TimeSlot{}, false
}
