package messaging

// ChangeTopic names one class of scheduling-config change. Each topic maps
// to its own amqp exchange, prefixed per country.
type ChangeTopic string

const (
	CitiesChanged    ChangeTopic = "cities_changed"
	TimeSlotsChanged ChangeTopic = "time_slots_changed"
	DateRulesChanged ChangeTopic = "date_rules_changed"
	SlotRulesChanged ChangeTopic = "slot_rules_changed"
)

// AllTopics lists every config topic a serving node should subscribe to.
var AllTopics = []ChangeTopic{CitiesChanged, TimeSlotsChanged, DateRulesChanged, SlotRulesChanged}

// ChangeNotice is the published payload. Serving nodes treat any notice as
// "reload the snapshot"; the fields exist for logging only.
type ChangeNotice struct {
	Topic    ChangeTopic `json:"topic"`
	RuleId   string      `json:"ruleId,omitempty"`
	EntityId uint        `json:"entityId,omitempty"`
}

// RabbitConfig holds the connection settings read from the environment.
type RabbitConfig struct {
	Url   string
	VHost string
}
