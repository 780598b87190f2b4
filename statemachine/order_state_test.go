package statemachine

import (
	"testing"

	"bam-burgers-api/models"
)

func TestAdminForwardChain(t *testing.T) {
	chain := []models.OrderStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for i := 0; i < len(chain)-1; i++ {
		if err := CanTransition(chain[i], chain[i+1], ActorAdmin); err != nil {
			t.Errorf("%s → %s should be allowed: %v", chain[i], chain[i+1], err)
		}
	}
}

func TestAdminShortcutFlow(t *testing.T) {
	// The observed admin flow skips accepted and ready
	steps := [][2]models.OrderStatus{
		{models.StatusPending, models.StatusPreparing},
		{models.StatusPreparing, models.StatusOutForDelivery},
		{models.StatusOutForDelivery, models.StatusDelivered},
	}
	for _, s := range steps {
		if err := CanTransition(s[0], s[1], ActorAdmin); err != nil {
			t.Errorf("%s → %s should be allowed: %v", s[0], s[1], err)
		}
	}
}

func TestBackwardTransitionRejected(t *testing.T) {
	if err := CanTransition(models.StatusDelivered, models.StatusPreparing, ActorAdmin); err == nil {
		t.Error("delivered → preparing must be rejected")
	}
	if err := CanTransition(models.StatusPreparing, models.StatusPending, ActorAdmin); err == nil {
		t.Error("preparing → pending must be rejected")
	}
	if err := CanTransition(models.StatusReady, models.StatusReady, ActorAdmin); err == nil {
		t.Error("self transition must be rejected")
	}
}

func TestCancellation(t *testing.T) {
	if err := CanTransition(models.StatusPreparing, models.StatusCancelled, ActorAdmin); err != nil {
		t.Errorf("admin cancel from preparing should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusDelivered, models.StatusCancelled, ActorAdmin); err == nil {
		t.Error("cancelling a delivered order must be rejected")
	}
	if err := CanTransition(models.StatusCancelled, models.StatusPreparing, ActorAdmin); err == nil {
		t.Error("cancelled is terminal")
	}
}

func TestCustomerCanOnlyCancelPending(t *testing.T) {
	if err := CanTransition(models.StatusPending, models.StatusCancelled, ActorCustomer); err != nil {
		t.Errorf("customer cancel of pending order should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusPreparing, models.StatusCancelled, ActorCustomer); err == nil {
		t.Error("customer cancel after preparing must be rejected")
	}
	if err := CanTransition(models.StatusPending, models.StatusAccepted, ActorCustomer); err == nil {
		t.Error("customer cannot advance an order")
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	next := ValidTransitionsFrom(models.StatusOutForDelivery)
	want := map[models.OrderStatus]bool{models.StatusDelivered: true, models.StatusCancelled: true}
	if len(next) != len(want) {
		t.Fatalf("ValidTransitionsFrom(out_for_delivery) = %v", next)
	}
	for _, s := range next {
		if !want[s] {
			t.Errorf("unexpected next state %s", s)
		}
	}

	if got := ValidTransitionsFrom(models.StatusDelivered); got != nil {
		t.Errorf("terminal state should have no transitions, got %v", got)
	}
}
