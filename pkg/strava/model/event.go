package model

import (
	"context"
	"time"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

// Push subscription events are not resource stated; event_time arrives
// as an epoch and updates as free form key/value pairs.
var webhookEventSchema = attributes.NewSchema(map[string]types.Attribute{
	"object_type":     attributes.Text(),
	"object_id":       attributes.Int(),
	"aspect_type":     attributes.Text(),
	"owner_id":        attributes.Int(),
	"subscription_id": attributes.Int(),
	"event_time":      attributes.Timestamp(),
	"updates":         attributes.Raw(),
})

// WebhookEvent is one push subscription callback payload.
type WebhookEvent struct {
	entities.Base
}

func NewWebhookEvent() *WebhookEvent {
	return &WebhookEvent{Base: entities.NewBase(webhookEventSchema)}
}

func DeserializeWebhookEvent(ctx context.Context, raw map[string]any, bind types.Fetcher) (*WebhookEvent, error) {
	return entities.Deserialize(ctx, NewWebhookEvent(), raw, bind)
}

// ObjectType is "activity" or "athlete".
func (e *WebhookEvent) ObjectType() string {
	return e.Text("object_type")
}

func (e *WebhookEvent) ObjectID() int64 {
	return e.Int("object_id")
}

// AspectType is "create", "update" or "delete".
func (e *WebhookEvent) AspectType() string {
	return e.Text("aspect_type")
}

func (e *WebhookEvent) OwnerID() int64 {
	return e.Int("owner_id")
}

func (e *WebhookEvent) SubscriptionID() int64 {
	return e.Int("subscription_id")
}

func (e *WebhookEvent) EventTime() time.Time {
	return e.Time("event_time")
}

// Updates returns the changed fields for update events, eg a changed
// title or privacy setting.
func (e *WebhookEvent) Updates() map[string]any {
	updates, _ := e.Value("updates").(map[string]any)
	return updates
}
