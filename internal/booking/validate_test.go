package booking

import (
	"testing"

	"dealership-assistant/internal/model"
)

func fullDraft() model.BookingDraft {
	return model.BookingDraft{
		model.FieldVehicleID:     "v1",
		model.FieldVehicleName:   "2024 Toyota Camry",
		model.FieldDate:          "tomorrow",
		model.FieldTime:          "10:00 AM",
		model.FieldCustomerName:  "John Smith",
		model.FieldCustomerPhone: "(555) 123-4567",
	}
}

func TestValidate(t *testing.T) {
	t.Run("Complete Draft", func(t *testing.T) {
		res := Validate(fullDraft())
		if !res.Valid {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("Missing Phone Only", func(t *testing.T) {
		d := fullDraft()
		delete(d, model.FieldCustomerPhone)

		res := Validate(d)
		if res.Valid {
			t.Fatal("expected invalid")
		}
		if len(res.MissingFields) != 1 || res.MissingFields[0] != model.FieldCustomerPhone {
			t.Errorf("expected missing=[customer_phone], got %v", res.MissingFields)
		}
		if len(res.InvalidFields) != 0 {
			t.Errorf("missing field must not be reported invalid: %v", res.InvalidFields)
		}
	})

	t.Run("Missing Order Preserved", func(t *testing.T) {
		d := fullDraft()
		delete(d, model.FieldDate)
		delete(d, model.FieldCustomerName)

		res := Validate(d)
		if len(res.MissingFields) != 2 ||
			res.MissingFields[0] != model.FieldDate ||
			res.MissingFields[1] != model.FieldCustomerName {
			t.Errorf("expected [date customer_name], got %v", res.MissingFields)
		}
	})

	t.Run("Sentinel Counts As Missing", func(t *testing.T) {
		d := fullDraft()
		d[model.FieldTime] = "Not provided"

		res := Validate(d)
		if res.Valid || len(res.MissingFields) != 1 || res.MissingFields[0] != model.FieldTime {
			t.Errorf("sentinel time should be missing, got %+v", res)
		}
	})

	t.Run("Nine Digit Phone Invalid", func(t *testing.T) {
		d := fullDraft()
		d[model.FieldCustomerPhone] = "555-123-456"

		res := Validate(d)
		if res.Valid {
			t.Fatal("expected invalid")
		}
		if len(res.InvalidFields) != 1 || res.InvalidFields[0] != model.FieldCustomerPhone {
			t.Errorf("expected invalid=[customer_phone], got %+v", res)
		}
		if len(res.MissingFields) != 0 {
			t.Errorf("malformed field must not be reported missing: %v", res.MissingFields)
		}
	})

	t.Run("Formatted Phone Valid", func(t *testing.T) {
		d := fullDraft()
		d[model.FieldCustomerPhone] = "(555) 123-4567"

		if res := Validate(d); !res.Valid {
			t.Errorf("10 digits after stripping should pass, got %+v", res)
		}
	})
}

func TestStripPhone(t *testing.T) {
	if got := StripPhone("(555) 123-4567"); got != "5551234567" {
		t.Errorf("got %q", got)
	}
	if got := StripPhone("call me"); got != "" {
		t.Errorf("got %q", got)
	}
}
