package model

// Booking draft field names.
const (
	FieldVehicleID     = "vehicle_id"
	FieldVehicleName   = "vehicle_name"
	FieldDate          = "date"
	FieldTime          = "time"
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
)

// RequiredBookingFields is the fixed validation and prompting order.
var RequiredBookingFields = []string{
	FieldVehicleID,
	FieldVehicleName,
	FieldDate,
	FieldTime,
	FieldCustomerName,
	FieldCustomerPhone,
}

// sentinelValues are classifier outputs that mean "not extracted",
// never a real field value.
var sentinelValues = map[string]struct{}{
	"":             {},
	"null":         {},
	"None":         {},
	"Not provided": {},
}

// IsSentinel reports whether v is a placeholder rather than real content.
func IsSentinel(v string) bool {
	_, ok := sentinelValues[v]
	return ok
}

// BookingDraft is the in-progress set of booking fields collected across
// turns. Keys are present only once populated.
type BookingDraft map[string]string

// Has reports whether the field is populated with a real value.
func (d BookingDraft) Has(field string) bool {
	v, ok := d[field]
	return ok && !IsSentinel(v)
}

// Set writes a field, ignoring sentinel values.
func (d BookingDraft) Set(field, value string) {
	if IsSentinel(value) {
		return
	}
	d[field] = value
}

// VehicleLocked reports whether a vehicle has been locked into the draft.
func (d BookingDraft) VehicleLocked() bool {
	return d.Has(FieldVehicleID)
}

// Active reports whether any field has been populated, i.e. a booking
// flow is in progress.
func (d BookingDraft) Active() bool {
	for _, v := range d {
		if !IsSentinel(v) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the draft.
func (d BookingDraft) Clone() BookingDraft {
	c := make(BookingDraft, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}
