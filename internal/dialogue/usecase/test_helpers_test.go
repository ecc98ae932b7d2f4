package usecase_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	bookingusecase "dealership-assistant/internal/booking/usecase"
	"dealership-assistant/internal/catalog/repository/jsonfile"
	catalogusecase "dealership-assistant/internal/catalog/usecase"
	"dealership-assistant/internal/dialogue"
	"dealership-assistant/internal/dialogue/usecase"
	"dealership-assistant/internal/model"
	"dealership-assistant/pkg/datemath"
	pkgLog "dealership-assistant/pkg/log"
)

// mockNLU scripts the language-understanding capability per test.
type mockNLU struct {
	classifyFn func(utterance string) model.IntentResult
	extractFn  func(window []model.Message) model.BookingDraft
	replyFn    func(utterance string) string
}

func (m *mockNLU) ClassifyIntent(ctx context.Context, utterance string) model.IntentResult {
	if m.classifyFn != nil {
		return m.classifyFn(utterance)
	}
	return model.IntentResult{Intent: model.IntentGeneral, Entities: map[string]string{}, Confidence: 0.5}
}

func (m *mockNLU) ExtractBookingFields(ctx context.Context, window []model.Message) model.BookingDraft {
	if m.extractFn != nil {
		return m.extractFn(window)
	}
	return model.BookingDraft{}
}

func (m *mockNLU) GenerateReply(ctx context.Context, contextText, utterance string) string {
	if m.replyFn != nil {
		return m.replyFn(utterance)
	}
	return "Happy to chat!"
}

// memBookingRepo is an in-memory booking repository.
type memBookingRepo struct {
	bookings  []model.Booking
	createErr error
}

func (m *memBookingRepo) Create(ctx context.Context, b model.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (model.Booking, bool, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, true, nil
		}
	}
	return model.Booking{}, false, nil
}

func (m *memBookingRepo) CountConfirmedBetween(ctx context.Context, from, to time.Time) (int, error) {
	count := 0
	for _, b := range m.bookings {
		if b.Status != model.BookingStatusConfirmed {
			continue
		}
		if !b.BookingDate.Before(from) && !b.BookingDate.After(to) {
			count++
		}
	}
	return count, nil
}

func (m *memBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memBookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	return m.bookings, nil
}

var testCandidateHours = []string{"9:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

func singleSedanCatalog() []model.Vehicle {
	return []model.Vehicle{
		{
			ID: "v1", Make: "Toyota", Model: "Camry", Variant: "XSE", Year: 2024,
			Category: "sedan", Price: 32500, FuelType: "hybrid", Available: true,
		},
		{
			ID: "v2", Make: "Ford", Model: "F-150", Variant: "Lariat", Year: 2024,
			Category: "truck", Price: 55200, FuelType: "gasoline", Available: true,
		},
	}
}

// newOrchestrator wires the orchestrator with real catalog/booking
// usecases over in-memory stores and the scripted NLU.
func newOrchestrator(t *testing.T, nluMock *mockNLU, repo *memBookingRepo, vehicles []model.Vehicle) dialogue.UseCase {
	t.Helper()

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("building parser: %v", err)
	}

	catalogUC := catalogusecase.New(pkgLog.NewNop(), jsonfile.NewFromVehicles(pkgLog.NewNop(), vehicles))
	bookingUC := bookingusecase.New(pkgLog.NewNop(), repo, dm, 9, 18, 15, testCandidateHours)

	return usecase.New(pkgLog.NewNop(), nluMock, catalogUC, bookingUC, dm)
}

// turn is a convenience wrapper for one ProcessTurn call.
func turn(t *testing.T, uc dialogue.UseCase, state *dialogue.ConversationState, utterance string) string {
	t.Helper()
	out, err := uc.ProcessTurn(context.Background(), state, dialogue.ProcessTurnInput{Utterance: utterance})
	if err != nil {
		t.Fatalf("ProcessTurn(%q): %v", utterance, err)
	}
	return out.Response
}

// intentScript maps exact utterances to scripted classifier results and
// defaults everything else to general.
func intentScript(script map[string]model.IntentResult) func(string) model.IntentResult {
	return func(utterance string) model.IntentResult {
		if res, ok := script[utterance]; ok {
			return res
		}
		return model.IntentResult{Intent: model.IntentGeneral, Entities: map[string]string{}, Confidence: 0.5}
	}
}
