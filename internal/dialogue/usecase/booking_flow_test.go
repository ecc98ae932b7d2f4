package usecase_test

import (
	"strings"
	"testing"

	"dealership-assistant/internal/dialogue"
	"dealership-assistant/internal/dialogue/usecase"
	"dealership-assistant/internal/model"
)

func multiSedanCatalog() []model.Vehicle {
	return []model.Vehicle{
		{ID: "v1", Make: "Toyota", Model: "Camry", Variant: "XSE", Year: 2024, Category: "sedan", Price: 32500, Available: true},
		{ID: "v2", Make: "Honda", Model: "Accord", Variant: "Sport", Year: 2023, Category: "sedan", Price: 29800, Available: true},
		{ID: "v3", Make: "Ford", Model: "F-150", Variant: "Lariat", Year: 2024, Category: "truck", Price: 55200, Available: true},
	}
}

func bookingIntent(entities map[string]string) model.IntentResult {
	if entities == nil {
		entities = map[string]string{}
	}
	return model.IntentResult{Intent: model.IntentBooking, Entities: entities, Confidence: 0.9}
}

func TestBookingFlow_NoCriteriaListsCategories(t *testing.T) {
	nluMock := &mockNLU{classifyFn: intentScript(map[string]model.IntentResult{
		"I'd like to book a test drive": bookingIntent(nil),
	})}
	uc := newOrchestrator(t, nluMock, &memBookingRepo{}, multiSedanCatalog())
	state := dialogue.NewConversationState(50)

	got := turn(t, uc, state, "I'd like to book a test drive")
	if !strings.Contains(got, "We have sedan, truck available.") {
		t.Errorf("expected category listing, got %q", got)
	}
	if state.Draft.VehicleLocked() {
		t.Error("no vehicle may be locked without criteria")
	}
}

func TestBookingFlow_CategoryDisambiguation(t *testing.T) {
	nluMock := &mockNLU{classifyFn: intentScript(map[string]model.IntentResult{
		"book a sedan": bookingIntent(map[string]string{model.EntityVehicleCategory: "sedan"}),
	})}
	uc := newOrchestrator(t, nluMock, &memBookingRepo{}, multiSedanCatalog())
	state := dialogue.NewConversationState(50)

	got := turn(t, uc, state, "book a sedan")
	if !strings.Contains(got, "Camry") || !strings.Contains(got, "Accord") {
		t.Errorf("expected model names listed, got %q", got)
	}
	if state.Draft.VehicleLocked() {
		t.Error("ambiguous category must not lock a vehicle")
	}
}

func TestBookingFlow_TwoCandidatePrompt(t *testing.T) {
	// Two vehicles share a make; no model given but also no category,
	// so disambiguation names both candidates.
	vehicles := []model.Vehicle{
		{ID: "v1", Make: "Toyota", Model: "Camry", Year: 2024, Category: "sedan", Available: true},
		{ID: "v2", Make: "Toyota", Model: "RAV4", Year: 2024, Category: "suv", Available: true},
	}
	nluMock := &mockNLU{classifyFn: intentScript(map[string]model.IntentResult{
		"book a toyota": bookingIntent(map[string]string{model.EntityVehicleMake: "Toyota"}),
	})}
	uc := newOrchestrator(t, nluMock, &memBookingRepo{}, vehicles)
	state := dialogue.NewConversationState(50)

	got := turn(t, uc, state, "book a toyota")
	if !strings.Contains(got, "Did you mean the 2024 Toyota Camry or the 2024 Toyota RAV4?") {
		t.Errorf("expected two-candidate prompt, got %q", got)
	}
}

func TestBookingFlow_ZeroMatchesAsksVehicle(t *testing.T) {
	nluMock := &mockNLU{classifyFn: intentScript(map[string]model.IntentResult{
		"book a lamborghini": bookingIntent(map[string]string{model.EntityVehicleMake: "Lamborghini"}),
	})}
	uc := newOrchestrator(t, nluMock, &memBookingRepo{}, multiSedanCatalog())
	state := dialogue.NewConversationState(50)

	if got := turn(t, uc, state, "book a lamborghini"); got != usecase.MsgAskVehicle {
		t.Errorf("expected vehicle prompt, got %q", got)
	}
}

func TestBookingFlow_InvalidPhoneClearedAndReprompted(t *testing.T) {
	nluMock := &mockNLU{classifyFn: intentScript(map[string]model.IntentResult{
		"book it": bookingIntent(map[string]string{
			model.EntityDate:          "tomorrow",
			model.EntityTime:          "10:00 AM",
			model.EntityCustomerName:  "John Smith",
			model.EntityCustomerPhone: "555-123-456", // 9 digits
		}),
	})}
	uc := newOrchestrator(t, nluMock, &memBookingRepo{}, multiSedanCatalog())
	state := dialogue.NewConversationState(50)
	state.Draft.Set(model.FieldVehicleID, "v1")
	state.Draft.Set(model.FieldVehicleName, "2024 Toyota Camry")

	got := turn(t, uc, state, "book it")
	if !strings.Contains(got, "10-digit phone number") {
		t.Errorf("expected phone re-prompt, got %q", got)
	}
	if state.Draft.Has(model.FieldCustomerPhone) {
		t.Error("malformed phone must be cleared from the draft")
	}
	if !state.Draft.Has(model.FieldCustomerName) {
		t.Error("other fields must survive the phone re-prompt")
	}
}
