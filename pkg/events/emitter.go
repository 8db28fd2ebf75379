// Package events handles event emission for CRM record lifecycle changes
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/kafka"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter publishes CRM lifecycle events. Emission is best-effort: mutations
// never fail because the broker is unavailable, so callers log and continue
// on error. A nil-producer emitter drops everything, which is how the
// service runs with the producer disabled.
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitCustomerCreated emits a customer created event
func (e *Emitter) EmitCustomerCreated(ctx context.Context, customer models.Customer) {
	e.emit(ctx, "customer.created", "customer", customer.ID, customer)
}

// EmitCustomerUpdated emits a customer updated event
func (e *Emitter) EmitCustomerUpdated(ctx context.Context, customer models.Customer) {
	e.emit(ctx, "customer.updated", "customer", customer.ID, customer)
}

// EmitOpportunityCreated emits an opportunity created event
func (e *Emitter) EmitOpportunityCreated(ctx context.Context, opp models.SalesOpportunity) {
	e.emit(ctx, "opportunity.created", "opportunity", opp.ID, opp)
}

// EmitCalendarEventCreated emits a calendar event created event
func (e *Emitter) EmitCalendarEventCreated(ctx context.Context, event models.CalendarEvent) {
	e.emit(ctx, "calendar_event.created", "calendar_event", event.ID, event)
}

// EmitStoreHydrated emits a hydration event with collection counts
func (e *Emitter) EmitStoreHydrated(ctx context.Context, counts map[string]int) {
	e.emit(ctx, "store.hydrated", "store", 0, counts)
}

func (e *Emitter) emit(ctx context.Context, eventType, recordType string, recordID int, data any) {
	if e.producer == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.emit")
	defer span.End()

	body := map[string]any{
		"schema_version": SchemaVersion,
		"record":         data,
	}
	dataJSON, _ := json.Marshal(body)

	event := &kafka.RecordEvent{
		EventType:  eventType,
		RecordType: recordType,
		RecordID:   recordID,
		Data:       dataJSON,
	}

	if err := e.producer.PublishRecordEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Errorf("Failed to emit %s event", eventType)
	}
}
