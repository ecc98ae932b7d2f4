package http

import (
	"errors"
	"time"

	"dealership-assistant/internal/model"
)

// --- Request DTOs ---

type turnReq struct {
	ConversationID string `json:"-"` // populated from URI param
	Message        string `json:"message" binding:"required"`
}

func (r turnReq) validate() error {
	if r.ConversationID == "" {
		return errors.New("conversation id is required")
	}
	return nil
}

type vehiclesReq struct {
	Make     string  `form:"make"`
	Model    string  `form:"model"`
	Category string  `form:"category"`
	MaxPrice float64 `form:"max_price"`
}

func (r vehiclesReq) validate() error {
	if r.MaxPrice < 0 {
		return errors.New("max_price must not be negative")
	}
	return nil
}

// --- Response DTOs ---

type turnResp struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
	Intent         string `json:"intent"`
}

type summaryResp struct {
	ConversationID string `json:"conversation_id"`
	Summary        string `json:"summary"`
	Turns          int    `json:"turns"`
}

type vehicleResp struct {
	ID       string   `json:"id"`
	Make     string   `json:"make"`
	Model    string   `json:"model"`
	Variant  string   `json:"variant,omitempty"`
	Year     int      `json:"year"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	FuelType string   `json:"fuel_type"`
	Features []string `json:"features,omitempty"`
	Summary  string   `json:"summary"`
}

type vehiclesResp struct {
	Vehicles []vehicleResp `json:"vehicles"`
	Count    int           `json:"count"`
}

func (h *handler) newVehiclesResp(vehicles []model.Vehicle) vehiclesResp {
	out := make([]vehicleResp, len(vehicles))
	for i, v := range vehicles {
		out[i] = vehicleResp{
			ID:       v.ID,
			Make:     v.Make,
			Model:    v.Model,
			Variant:  v.Variant,
			Year:     v.Year,
			Category: v.Category,
			Price:    v.Price,
			FuelType: v.FuelType,
			Features: v.Features,
			Summary:  h.catalogUC.Summary(v),
		}
	}
	return vehiclesResp{Vehicles: out, Count: len(out)}
}

type slotsResp struct {
	Date    string   `json:"date"`
	OK      bool     `json:"ok"`
	Slots   []string `json:"slots,omitempty"`
	Message string   `json:"message,omitempty"`
}

type bookingResp struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleName   string    `json:"vehicle_name"`
	BookingDate   time.Time `json:"booking_date"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
}

type bookingsResp struct {
	Bookings []bookingResp `json:"bookings"`
	Count    int           `json:"count"`
}

func newBookingsResp(bookings []model.Booking) bookingsResp {
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = bookingResp{
			ID:            b.ID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			VehicleID:     b.VehicleID,
			VehicleName:   b.VehicleName,
			BookingDate:   b.BookingDate,
			CreatedAt:     b.CreatedAt,
			Status:        b.Status,
		}
	}
	return bookingsResp{Bookings: out, Count: len(out)}
}
