package orders

import (
	"errors"
	"testing"

	"craftnest/models"
)

func completeAddress() models.DeliveryAddress {
	return models.DeliveryAddress{
		FullName:    "Asha Verma",
		PhoneNumber: "9876543210",
		Address:     "12 Loom Street",
		City:        "Jaipur",
		State:       "Rajasthan",
		Pincode:     "302001",
	}
}

func TestValidateInput(t *testing.T) {
	base := PlaceOrderInput{
		BuyerID:       "uBuyer01",
		Lines:         []LineRequest{{ProductID: "pAbc123", Quantity: 2}},
		Address:       completeAddress(),
		PaymentMethod: models.PaymentCOD,
	}

	tests := []struct {
		name   string
		mutate func(*PlaceOrderInput)
		want   error
	}{
		{"valid input", func(in *PlaceOrderInput) {}, nil},
		{"no lines", func(in *PlaceOrderInput) { in.Lines = nil }, ErrNoProducts},
		{"zero quantity", func(in *PlaceOrderInput) { in.Lines[0].Quantity = 0 }, ErrNoProducts},
		{"negative quantity", func(in *PlaceOrderInput) { in.Lines[0].Quantity = -1 }, ErrNoProducts},
		{"missing product id", func(in *PlaceOrderInput) { in.Lines[0].ProductID = "" }, ErrNoProducts},
		{"missing city", func(in *PlaceOrderInput) { in.Address.City = "" }, ErrBadAddress},
		{"missing pincode", func(in *PlaceOrderInput) { in.Address.Pincode = "" }, ErrBadAddress},
		{"unknown payment method", func(in *PlaceOrderInput) { in.PaymentMethod = "WALLET" }, ErrBadMethod},
		{"empty payment method", func(in *PlaceOrderInput) { in.PaymentMethod = "" }, ErrBadMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.Lines = append([]LineRequest(nil), base.Lines...)
			tt.mutate(&in)

			err := ValidateInput(in)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateInput() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateInputCountryOptional(t *testing.T) {
	in := PlaceOrderInput{
		BuyerID:       "uBuyer01",
		Lines:         []LineRequest{{ProductID: "pAbc123", Quantity: 1}},
		Address:       completeAddress(),
		PaymentMethod: models.PaymentUPI,
	}
	// Country carries no required tag; PlaceOrder fills in the default later.
	in.Address.Country = ""
	if err := ValidateInput(in); err != nil {
		t.Errorf("ValidateInput() with empty country = %v, want nil", err)
	}
}
