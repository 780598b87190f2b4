package statemachine

import (
	"errors"
	"fmt"

	"bam-burgers-api/models"
)

// Actors that can drive an order through its lifecycle
const (
	ActorAdmin    = "admin"
	ActorCustomer = "customer"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// statusRank orders the forward chain. Moves are only ever allowed to a
// higher rank; cancelled sits outside the chain and is reachable from any
// non-terminal state.
var statusRank = map[models.OrderStatus]int{
	models.StatusPending:        0,
	models.StatusAccepted:       1,
	models.StatusPreparing:      2,
	models.StatusReady:          3,
	models.StatusOutForDelivery: 4,
	models.StatusDelivered:      5,
}

func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// CanTransition checks whether an actor may move an order between two
// states. The admin panel is allowed to skip intermediate states (the
// observed flow jumps pending to preparing), but never to move backwards
// or out of a terminal state. Customers may only cancel while pending.
func CanTransition(from, to models.OrderStatus, actor string) error {
	if IsTerminal(from) {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}

	if to == models.StatusCancelled {
		if actor == ActorCustomer && from != models.StatusPending {
			return fmt.Errorf("%w: customer can only cancel a pending order", ErrInvalidTransition)
		}
		return nil
	}

	if actor != ActorAdmin {
		return fmt.Errorf("%w: only admin can set status %s", ErrInvalidTransition, to)
	}

	fromRank, ok := statusRank[from]
	if !ok {
		return fmt.Errorf("%w: unknown status %s", ErrInvalidTransition, from)
	}
	toRank, ok := statusRank[to]
	if !ok {
		return fmt.Errorf("%w: unknown status %s", ErrInvalidTransition, to)
	}
	if toRank <= fromRank {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// ValidTransitionsFrom returns the states an admin may move to next.
func ValidTransitionsFrom(from models.OrderStatus) []models.OrderStatus {
	if IsTerminal(from) {
		return nil
	}
	chain := []models.OrderStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	var next []models.OrderStatus
	for _, s := range chain {
		if statusRank[s] > statusRank[from] {
			next = append(next, s)
		}
	}
	return append(next, models.StatusCancelled)
}
