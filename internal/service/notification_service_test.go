package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/medequip-service/internal/config"
	"github.com/spec-kit/medequip-service/internal/events"
)

type recordingPublisher struct {
	mu       sync.Mutex
	channels []string
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.channels = append(p.channels, channel)
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestNotificationServiceForwardsEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	publisher := &recordingPublisher{}
	svc := NewNotificationService(dispatcher, publisher, zaptest.NewLogger(t), config.NotificationConfig{Channel: "medequip.events"})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:         "evt-1",
		Type:       events.EventTicketCreated,
		ResourceID: "t1",
		Payload:    events.TicketCreatedPayload{EquipmentID: "e1", Priority: "high", Title: "Broken"},
	})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if len(publisher.payloads) != 1 || publisher.channels[0] != "medequip.events" {
		t.Fatalf("expected one forwarded event, got %d", len(publisher.payloads))
	}
	var decoded map[string]any
	if err := json.Unmarshal(publisher.payloads[0], &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if decoded["type"] != string(events.EventTicketCreated) || decoded["resource_id"] != "t1" {
		t.Fatalf("unexpected payload %v", decoded)
	}
}

func TestNotificationServiceSurfacesPublishFailure(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	boom := errors.New("redis down")
	svc := NewNotificationService(dispatcher, &recordingPublisher{err: boom}, zaptest.NewLogger(t), config.NotificationConfig{Channel: "c"})
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventEquipmentDeleted, ResourceID: "e1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected publish failure to surface, got %v", err)
	}
}

func TestNotificationServiceWithoutChannel(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	publisher := &recordingPublisher{}
	svc := NewNotificationService(dispatcher, publisher, nil, config.NotificationConfig{})
	svc.RegisterHandlers()

	if err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventMaintenanceRecorded}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.payloads) != 0 {
		t.Fatalf("expected nothing forwarded without a channel")
	}
}
