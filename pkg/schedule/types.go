package schedule

// CartProduct is one cart line as seen by the engine. Only the tags matter
// for delivery scheduling; price and quantity live in the cart service.
type CartProduct struct {
	Tags []string `json:"tags"`
}

// DeliveryCity is a city a merchant delivers to. CutoffTime is the local
// "HH:mm" wall-clock time after which same-day dispatch stops; empty means
// no cutoff restriction.
type DeliveryCity struct {
	Id         uint   `json:"id"`
	Name       string `json:"name"`
	Special    bool   `json:"isSpecial,omitempty"`
	CutoffTime string `json:"cutoffTime,omitempty"`
}

// TimeSlot is a bookable delivery window. Start/end are "HH:mm" labels for
// presentation; the engine does not enforce start < end.
type TimeSlot struct {
	Id        uint   `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// DateDisableRule removes whole delivery dates. The range is inclusive both
// ends; an empty EndDate means the single StartDate day. CityId 0 applies
// to all cities. RuleId is assigned by the admin layer and ignored here.
type DateDisableRule struct {
	RuleId    string `json:"ruleId,omitempty"`
	CityId    uint   `json:"cityId,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// SlotDisableRule removes one time slot on a date range, optionally for a
// single city. Same range semantics as DateDisableRule.
type SlotDisableRule struct {
	RuleId     string `json:"ruleId,omitempty"`
	TimeSlotId uint   `json:"timeSlotId"`
	CityId     uint   `json:"cityId,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// CheckoutFields is one checkout attempt, validated as a unit.
type CheckoutFields struct {
	FullName         string `json:"fullName"`
	PhoneNumber      string `json:"phoneNumber"`
	DeliveryAddress  string `json:"deliveryAddress"`
	DeliveryDate     string `json:"deliveryDate"`
	DeliveryTimeSlot uint   `json:"deliveryTimeSlot"`
}
