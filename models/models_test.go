package models

import (
	"math"
	"testing"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{4}, 4},
		{"mixed ratings", []int{5, 3, 4}, 4},
		{"non-integer mean", []int{5, 4}, 4.5},
		{"all minimum", []int{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reviews []Review
			for _, r := range tt.ratings {
				reviews = append(reviews, Review{Rating: r})
			}
			got := AverageRating(reviews)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

func TestValidPaymentMethod(t *testing.T) {
	for _, method := range []string{PaymentCOD, PaymentUPI, PaymentDebitCard, PaymentCreditCard, PaymentNetBanking} {
		if !ValidPaymentMethod(method) {
			t.Errorf("expected %q to be valid", method)
		}
	}
	for _, method := range []string{"", "cod", "PAYPAL", "Cod "} {
		if ValidPaymentMethod(method) {
			t.Errorf("expected %q to be invalid", method)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderPlaced, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled} {
		if !ValidOrderStatus(status) {
			t.Errorf("expected %q to be valid", status)
		}
	}
	if ValidOrderStatus("Returned") {
		t.Error("expected Returned to be invalid")
	}
}

func TestOrderCanCancel(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderPlaced, true},
		{OrderConfirmed, true},
		{OrderShipped, false},
		{OrderDelivered, false},
		{OrderCancelled, true},
	}

	for _, tt := range tests {
		o := Order{OrderStatus: tt.status}
		if got := o.CanCancel(); got != tt.want {
			t.Errorf("CanCancel with status %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	o := Order{Products: []OrderLine{
		{ProductID: "p1", Price: 250, Quantity: 2},
		{ProductID: "p2", Price: 99.5, Quantity: 1},
	}}
	if got, want := o.Total(), 599.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("Total() = %v, want %v", got, want)
	}

	empty := Order{}
	if got := empty.Total(); got != 0 {
		t.Errorf("Total() on empty order = %v, want 0", got)
	}
}

func TestWorkshopCanEnroll(t *testing.T) {
	ws := Workshop{
		MaxParticipants:     2,
		CurrentParticipants: 1,
		Enrolled:            []string{"u1"},
	}

	if ok, _ := ws.CanEnroll("u2"); !ok {
		t.Error("expected u2 to be able to enroll")
	}

	if ok, reason := ws.CanEnroll("u1"); ok || reason != "Already enrolled" {
		t.Errorf("expected already-enrolled rejection, got ok=%v reason=%q", ok, reason)
	}

	ws.CurrentParticipants = 2
	if ok, reason := ws.CanEnroll("u3"); ok || reason != "Workshop is full" {
		t.Errorf("expected full-workshop rejection, got ok=%v reason=%q", ok, reason)
	}
}
