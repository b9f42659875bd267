package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	optionRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdelivery_option_requests_total",
		Help: "The total number of delivery option lookups",
	})
	slotRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdelivery_slot_requests_total",
		Help: "The total number of slot availability lookups",
	})
	checkoutValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slaskdelivery_checkout_validations_total",
		Help: "Checkout validation attempts by outcome",
	}, []string{"outcome"})
	configReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskdelivery_config_reloads_total",
		Help: "The number of schedule config snapshot reloads",
	})
)
