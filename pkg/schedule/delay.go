package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// Delay tags look like "delay", "delay-3" or "cake-delay-3". A bare
// "delay" means one extra day.
var tagDelayPattern = regexp.MustCompile(`^(?:cake-)?delay(?:-(\d+))?$`)

// TagDelay returns the number of extra lead days encoded in one product
// tag. Non-matching tags yield 0; a matching tag without a numeric suffix
// yields 1. A suffix that fails to parse yields 0 rather than an error.
func TagDelay(tag string) int {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	match := tagDelayPattern.FindStringSubmatch(normalized)
	if match == nil {
		return 0
	}
	if match[1] == "" {
		return 1
	}
	days, err := strconv.Atoi(match[1])
	if err != nil || days < 0 {
		return 0
	}
	return days
}

// ProductDelay returns the largest delay among a product's tags.
func ProductDelay(product CartProduct) int {
	delay := 0
	for _, tag := range product.Tags {
		if d := TagDelay(tag); d > delay {
			delay = d
		}
	}
	return delay
}

// CartDelay returns the worst-case delay over all products in the cart.
// A single high-delay item delays the whole order; the result is the max,
// never the sum. Empty carts and products without tags contribute 0.
func CartDelay(products []CartProduct) int {
	delay := 0
	for _, product := range products {
		if d := ProductDelay(product); d > delay {
			delay = d
		}
	}
	return delay
}
