package attributes

import (
	"context"
	"fmt"

	"github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/types"
)

// EntityFactory deserializes a raw payload into a bound entity of one
// concrete type.
type EntityFactory func(ctx context.Context, raw map[string]any, bind types.Fetcher) (types.Entity, error)

// The type registry breaks circular type relationships (effort to
// activity to segment) by letting attributes reference entity types by
// name. It is written from init functions only and read only after that.
var typeRegistry = map[string]EntityFactory{}

func RegisterEntityType(name string, factory EntityFactory) {
	if _, exists := typeRegistry[name]; exists {
		panic(fmt.Sprintf("entity type %s registered twice", name))
	}

	typeRegistry[name] = factory
}

func lookupEntityType(name string) (EntityFactory, error) {
	factory, ok := typeRegistry[name]
	if !ok {
		return nil, errors.NewDeserializationError(fmt.Sprintf("no entity type named %s has been registered", name))
	}

	return factory, nil
}

// Schema is the per entity type attribute registry that the generic
// population routine consults instead of runtime existence checks. It
// is built once at type definition time and shared read only between
// all instances of that type.
type Schema struct {
	fields map[string]types.Attribute
}

func NewSchema(fields map[string]types.Attribute) *Schema {
	s := &Schema{fields: map[string]types.Attribute{}}

	for name, attribute := range fields {
		s.fields[name] = attribute
	}

	return s
}

// Extend returns a new schema with the receiver's fields plus the given
// ones, leaving the receiver untouched. Used to compose entity bases.
func (s *Schema) Extend(fields map[string]types.Attribute) *Schema {
	extended := NewSchema(s.fields)

	for name, attribute := range fields {
		extended.fields[name] = attribute
	}

	return extended
}

func (s *Schema) Lookup(name string) (types.Attribute, bool) {
	attribute, ok := s.fields[name]
	return attribute, ok
}
