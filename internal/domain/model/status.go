package model

import (
	"fmt"
	"strings"

	domainErrors "github.com/logistics-platform/waybill/internal/domain/errors"
)

// WaybillStatus describes delivery lifecycle.
type WaybillStatus string

const (
	WaybillStatusCreated    WaybillStatus = "CREATED"
	WaybillStatusPicked     WaybillStatus = "PICKED"
	WaybillStatusDelivering WaybillStatus = "DELIVERING"
	WaybillStatusDelivered  WaybillStatus = "DELIVERED"
	WaybillStatusCancelled  WaybillStatus = "CANCELLED"
)

// validTransitions lists reachable targets per status. DELIVERED and
// CANCELLED are terminal.
var validTransitions = map[WaybillStatus][]WaybillStatus{
	WaybillStatusCreated:    {WaybillStatusPicked, WaybillStatusCancelled},
	WaybillStatusPicked:     {WaybillStatusDelivering, WaybillStatusCancelled},
	WaybillStatusDelivering: {WaybillStatusDelivered, WaybillStatusCancelled},
	WaybillStatusDelivered:  {},
	WaybillStatusCancelled:  {},
}

// CanTransitionTo reports whether target is reachable from s.
func (s WaybillStatus) CanTransitionTo(target WaybillStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s WaybillStatus) Terminal() bool {
	allowed, ok := validTransitions[s]
	return ok && len(allowed) == 0
}

// ParseWaybillStatus matches text against known statuses case-insensitively.
func ParseWaybillStatus(text string) (WaybillStatus, error) {
	for status := range validTransitions {
		if strings.EqualFold(string(status), text) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domainErrors.ErrInvalidStatus, text)
}
