package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"vehicleagent/internal/model"
	"vehicleagent/internal/repository"
)

const (
	// DefaultSessionID is used when the client does not supply one.
	DefaultSessionID = "default_session"

	// FallbackApology is the fixed reply when the conversational engine
	// is unavailable or errors out.
	FallbackApology = "I'm having trouble connecting to my brain right now."
)

// Dispatcher is the orchestrating entry point for one inbound message:
// classify, extract, invoke, render. Invoker failures are absorbed by the
// degraded-value contract, so rendering always runs with some payload;
// only a renderer-level schema violation propagates as an error.
type Dispatcher struct {
	catalog      *repository.Catalog
	invoker      *Invoker
	renderer     *Renderer
	chat         ChatClient // nil when no engine is configured
	sessions     *sessionStore
	compareLimit int
}

// NewDispatcher creates a new session dispatcher
func NewDispatcher(catalog *repository.Catalog, invoker *Invoker, renderer *Renderer, chat ChatClient, compareLimit int) *Dispatcher {
	if compareLimit <= 0 {
		compareLimit = 2
	}
	return &Dispatcher{
		catalog:      catalog,
		invoker:      invoker,
		renderer:     renderer,
		chat:         chat,
		sessions:     newSessionStore(),
		compareLimit: compareLimit,
	}
}

// Process routes one message (or client event) and returns the chat
// response. The returned error is non-nil only for renderer faults.
func (d *Dispatcher) Process(ctx context.Context, query, sessionID string, event *model.ClientEvent) (*model.ChatResponse, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	d.sessions.ensure(sessionID)

	// Client events bypass classification entirely.
	if event != nil {
		return &model.ChatResponse{Text: d.handleClientEvent(ctx, event)}, nil
	}

	switch ClassifyIntent(query) {
	case IntentSearch:
		cars := d.invoker.SearchCars(ctx, query)
		msg, err := d.renderer.Render(model.SurfaceTable, map[string]any{
			"columns": []string{"ID", "Make", "Model", "Year", "Price"},
			"rows":    cars,
		})
		if err != nil {
			return nil, err
		}
		return surfaceResponse(msg)

	case IntentCompare:
		ids := ExtractVehicles(query, d.catalog, d.compareLimit)
		if len(ids) < 2 {
			ids = PadCompareIDs(ids)
		}
		result := d.invoker.CompareCars(ctx, ids)

		data := map[string]any{"cars": result.Cars}
		if result.Verdict != "" {
			data["verdict"] = result.Verdict
		}
		msg, err := d.renderer.Render(model.SurfaceCardComparison, data)
		if err != nil {
			return nil, err
		}
		return surfaceResponse(msg)

	case IntentBook:
		// Fixed mock context for the form; a selected vehicle arrives
		// later through the formSubmit event.
		msg, err := d.renderer.Render(model.SurfaceBookingForm, map[string]any{
			"carId": "c1",
			"make":  "Tesla",
			"model": "Model 3",
		})
		if err != nil {
			return nil, err
		}
		return surfaceResponse(msg)

	case IntentEvent:
		return &model.ChatResponse{Text: d.handleEventText(ctx, query)}, nil
	}

	return d.fallback(ctx, sessionID, query), nil
}

// handleEventText parses an EVENT:-prefixed payload embedded in message
// text and routes it through the client event path.
func (d *Dispatcher) handleEventText(ctx context.Context, text string) string {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), EventPrefix))

	var event model.ClientEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return fmt.Sprintf("Error handling event: %v", err)
	}
	return d.handleClientEvent(ctx, &event)
}

func (d *Dispatcher) handleClientEvent(ctx context.Context, event *model.ClientEvent) string {
	log.Printf("Handling client event: type=%s, payload=%v", event.Type, event.Payload)

	switch event.Type {
	case "formSubmit":
		return d.invoker.BookAppointment(
			ctx,
			stringField(event.Payload, "carId"),
			stringField(event.Payload, "date"),
			stringField(event.Payload, "email"),
		)
	case "rowSelect":
		return fmt.Sprintf("User selected car %s. Ask if they want to compare or book it.",
			stringField(event.Payload, "carId"))
	}
	return fmt.Sprintf("Event %s received.", event.Type)
}

// fallback hands the message to the conversational engine. Any failure is
// converted to the fixed apology string; this path never errors outward.
func (d *Dispatcher) fallback(ctx context.Context, sessionID, query string) *model.ChatResponse {
	if d.chat == nil || !d.chat.IsEnabled() {
		log.Printf("Conversational engine not configured, returning apology")
		return &model.ChatResponse{Text: FallbackApology}
	}

	reply, err := d.chat.Chat(ctx, d.sessions.history(sessionID), query)
	if err != nil {
		log.Printf("Error calling agent: %v", err)
		return &model.ChatResponse{Text: FallbackApology}
	}

	d.sessions.append(sessionID,
		ChatTurn{Role: "user", Text: query},
		ChatTurn{Role: "model", Text: reply},
	)
	return &model.ChatResponse{Text: reply}
}

func surfaceResponse(msg *model.SurfaceMessage) (*model.ChatResponse, error) {
	encoded, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode surface message: %w", err)
	}
	return &model.ChatResponse{Text: string(encoded)}, nil
}

func stringField(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	if s, ok := payload[key].(string); ok {
		return s
	}
	if v, ok := payload[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// sessionStore keeps per-session conversation history for the fallback
// path. Sessions hold no other business state and are created lazily.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string][]ChatTurn
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string][]ChatTurn)}
}

func (s *sessionStore) ensure(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		s.sessions[id] = []ChatTurn{}
	}
}

func (s *sessionStore) history(id string) []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func (s *sessionStore) append(id string, turns ...ChatTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], turns...)
}
