package entities

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

// Base provides the generic population machinery that all concrete
// entities embed. Field values live in a map keyed by payload name and
// are exposed through typed accessors on the concrete types. The
// attribute schema is shared, per type metadata; everything else is per
// instance state.
type Base struct {
	schema *attributes.Schema
	values map[string]any
	bind   types.Fetcher
}

func NewBase(schema *attributes.Schema) Base {
	return Base{
		schema: schema,
		values: map[string]any{},
	}
}

// Bind associates an API client with this entity. The association is
// non owning and may be absent, in which case any lazy fetch fails
// with ErrUnboundEntity.
func (b *Base) Bind(client types.Fetcher) {
	b.bind = client
}

func (b *Base) BindClient() types.Fetcher {
	return b.bind
}

// AssertBindClient is the precondition guard that every lazy fetch
// runs before delegating to the client.
func (b *Base) AssertBindClient() error {
	if b.bind == nil {
		return errors.NewUnboundEntityError("unable to fetch objects for an unbound entity")
	}

	return nil
}

// FromRaw populates the entity from a raw payload. Keys that the
// entity's schema does not declare are logged and dropped, never an
// error, so that unknown API fields stay forward compatible. A failed
// conversion aborts population but leaves previously set keys in place.
func (b *Base) FromRaw(ctx context.Context, raw map[string]any) error {
	log := logging.GetFromContext(ctx)

	for name, value := range raw {
		attribute, declared := b.schema.Lookup(name)
		if !declared {
			log.Warn("ignoring undeclared attribute", "attribute", name)
			continue
		}

		converted, err := attribute.Convert(ctx, value, b.bind)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", name, err)
		}

		if converted != nil {
			b.values[name] = converted
		}
	}

	return nil
}

// Hydrate is meant to backfill missing fields on a minimally populated
// entity by fetching full detail through the bound client. The backfill
// protocol is not designed yet, so it fails loudly after checking its
// precondition.
func (b *Base) Hydrate(ctx context.Context) error {
	if err := b.AssertBindClient(); err != nil {
		return err
	}

	return errors.ErrNotImplemented
}

func (b *Base) ResourceState() types.ResourceState {
	return types.ResourceState(b.Int("resource_state"))
}

// IsSet reports whether population stored a value for the named field.
// Accessors return zero values for fields that were never set.
func (b *Base) IsSet(name string) bool {
	_, ok := b.values[name]
	return ok
}

func (b *Base) Value(name string) any {
	return b.values[name]
}

func (b *Base) Int(name string) int64 {
	v, _ := b.values[name].(int64)
	return v
}

func (b *Base) Float(name string) float64 {
	v, _ := b.values[name].(float64)
	return v
}

func (b *Base) Text(name string) string {
	v, _ := b.values[name].(string)
	return v
}

func (b *Base) Bool(name string) bool {
	v, _ := b.values[name].(bool)
	return v
}

func (b *Base) Time(name string) time.Time {
	v, _ := b.values[name].(time.Time)
	return v
}

func (b *Base) Quantity(name string) units.Quantity {
	v, _ := b.values[name].(units.Quantity)
	return v
}

func (b *Base) LatLng(name string) *attributes.LatLng {
	if v, ok := b.values[name].(attributes.LatLng); ok {
		return &v
	}

	return nil
}

func (b *Base) Timezone(name string) *attributes.Timezone {
	if v, ok := b.values[name].(attributes.Timezone); ok {
		return &v
	}

	return nil
}

func (b *Base) Collection(name string) []types.Entity {
	v, _ := b.values[name].([]types.Entity)
	return v
}

func (b *Base) Entity(name string) types.Entity {
	v, _ := b.values[name].(types.Entity)
	return v
}

// Populatable is what the generic deserialization helper needs from a
// concrete entity type.
type Populatable interface {
	types.Entity
	Bind(types.Fetcher)
	FromRaw(ctx context.Context, raw map[string]any) error
}

// Deserialize binds the given client to a freshly constructed entity
// and populates it from the raw payload. A nil bind client is a valid,
// if restricted, state.
func Deserialize[E Populatable](ctx context.Context, e E, raw map[string]any, bind types.Fetcher) (E, error) {
	e.Bind(bind)

	if err := e.FromRaw(ctx, raw); err != nil {
		var unset E
		return unset, err
	}

	return e, nil
}
