package attributes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

// stateTagged implements the resource state bookkeeping that is common
// to all descriptor variants. An empty state list means the attribute
// is state agnostic and valid everywhere.
type stateTagged struct {
	states []types.ResourceState
}

func (st stateTagged) ValidIn(state types.ResourceState) bool {
	if len(st.states) == 0 {
		return true
	}

	for _, s := range st.states {
		if s == state {
			return true
		}
	}

	return false
}

type scalarKind int

const (
	kindInt scalarKind = iota
	kindFloat
	kindText
	kindBool
)

func (k scalarKind) String() string {
	return [...]string{"int", "float", "text", "bool"}[k]
}

// ScalarAttribute converts raw values to one of the primitive kinds,
// optionally wrapping the result in a unit tagged quantity.
type ScalarAttribute struct {
	stateTagged
	kind scalarKind
	unit string
}

func Int(states ...types.ResourceState) *ScalarAttribute {
	return &ScalarAttribute{stateTagged: stateTagged{states}, kind: kindInt}
}

func Float(states ...types.ResourceState) *ScalarAttribute {
	return &ScalarAttribute{stateTagged: stateTagged{states}, kind: kindFloat}
}

func Text(states ...types.ResourceState) *ScalarAttribute {
	return &ScalarAttribute{stateTagged: stateTagged{states}, kind: kindText}
}

func Bool(states ...types.ResourceState) *ScalarAttribute {
	return &ScalarAttribute{stateTagged: stateTagged{states}, kind: kindBool}
}

// Unit tags the attribute with a unit code. Converted values are then
// returned as units.Quantity instead of a bare number.
func (a *ScalarAttribute) Unit(unit string) *ScalarAttribute {
	a.unit = unit
	return a
}

func (a *ScalarAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	if raw == nil {
		return nil, nil
	}

	if a.unit != "" {
		if q, ok := raw.(units.Quantity); ok {
			return q, nil
		}

		number, ok := asFloat(raw)
		if !ok {
			return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a number", raw, raw))
		}

		return units.NewQuantity(number, a.unit), nil
	}

	switch a.kind {
	case kindInt:
		if i, ok := raw.(int64); ok {
			return i, nil
		}
		if number, ok := asFloat(raw); ok {
			return int64(number), nil
		}
	case kindFloat:
		if number, ok := asFloat(raw); ok {
			return number, nil
		}
	case kindText:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case kindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not convertible to %s", raw, raw, a.kind))
}

// TimestampAttribute parses RFC 3339 strings or epoch numbers into a
// time.Time. Already structured input passes through unchanged.
type TimestampAttribute struct {
	stateTagged
}

func Timestamp(states ...types.ResourceState) *TimestampAttribute {
	return &TimestampAttribute{stateTagged{states}}
}

func (a *TimestampAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errors.NewDeserializationError(fmt.Sprintf("failed to parse timestamp %q: %s", v, err.Error()))
		}
		return ts, nil
	default:
		if epoch, ok := asFloat(raw); ok {
			return time.Unix(int64(epoch), 0).UTC(), nil
		}
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a timestamp", raw, raw))
}

// TimeIntervalAttribute wraps raw integer seconds in a seconds quantity.
type TimeIntervalAttribute struct {
	stateTagged
}

func TimeInterval(states ...types.ResourceState) *TimeIntervalAttribute {
	return &TimeIntervalAttribute{stateTagged{states}}
}

func (a *TimeIntervalAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case units.Quantity:
		return v, nil
	case time.Duration:
		return units.Seconds(v.Seconds()), nil
	}

	if seconds, ok := asFloat(raw); ok {
		return units.Seconds(seconds), nil
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a time interval", raw, raw))
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// LocationAttribute unpacks a two element [lat, lng] sequence.
type LocationAttribute struct {
	stateTagged
}

func Location(states ...types.ResourceState) *LocationAttribute {
	return &LocationAttribute{stateTagged{states}}
}

func (a *LocationAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case LatLng:
		return v, nil
	case []any:
		if len(v) == 0 {
			return nil, nil
		}

		if len(v) == 2 {
			lat, latOK := asFloat(v[0])
			lng, lngOK := asFloat(v[1])
			if latOK && lngOK {
				return LatLng{Lat: lat, Lng: lng}, nil
			}
		}
	case []float64:
		if len(v) == 0 {
			return nil, nil
		}

		if len(v) == 2 {
			return LatLng{Lat: v[0], Lng: v[1]}, nil
		}
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a [lat, lng] pair", raw, raw))
}

// Timezone is a structured "<utc offset> <olson name>" value.
type Timezone struct {
	UTCOffset string
	Name      string
}

// TimezoneAttribute splits a compound "<offset> <olson-name>" string.
// When the remainder after the first space does not name a known zone
// the whole string is kept as the zone name.
type TimezoneAttribute struct {
	stateTagged
}

func TimezoneField(states ...types.ResourceState) *TimezoneAttribute {
	return &TimezoneAttribute{stateTagged{states}}
}

func (a *TimezoneAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Timezone:
		return v, nil
	case string:
		if offset, name, found := strings.Cut(v, " "); found {
			if _, err := time.LoadLocation(name); err == nil {
				return Timezone{UTCOffset: offset, Name: name}, nil
			}
		}
		return Timezone{Name: v}, nil
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a timezone", raw, raw))
}

// EntityAttribute recursively deserializes a nested payload into the
// named entity type, propagating the owning bind client. The type is
// referenced by name and resolved through the registry at first use so
// that circular type relationships can be declared.
type EntityAttribute struct {
	stateTagged
	typeName string
}

func Entity(typeName string, states ...types.ResourceState) *EntityAttribute {
	return &EntityAttribute{stateTagged: stateTagged{states}, typeName: typeName}
}

func (a *EntityAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case types.Entity:
		return v, nil
	case map[string]any:
		factory, err := lookupEntityType(a.typeName)
		if err != nil {
			return nil, err
		}
		return factory(ctx, v, bind)
	}

	return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a nested %s", raw, raw, a.typeName))
}

// EntityCollection deserializes an ordered sequence of nested payloads,
// preserving input order. A nil or absent value converts to an empty
// sequence.
type EntityCollection struct {
	stateTagged
	typeName string
}

func Collection(typeName string, states ...types.ResourceState) *EntityCollection {
	return &EntityCollection{stateTagged: stateTagged{states}, typeName: typeName}
}

func (a *EntityCollection) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	if raw == nil {
		return []types.Entity{}, nil
	}

	if already, ok := raw.([]types.Entity); ok {
		return already, nil
	}

	elements, ok := raw.([]any)
	if !ok {
		return nil, errors.NewDeserializationError(fmt.Sprintf("value %v (%T) is not a sequence of %s", raw, raw, a.typeName))
	}

	factory, err := lookupEntityType(a.typeName)
	if err != nil {
		return nil, err
	}

	collection := make([]types.Entity, 0, len(elements))

	for _, element := range elements {
		m, ok := element.(map[string]any)
		if !ok {
			return nil, errors.NewDeserializationError(fmt.Sprintf("collection element %v (%T) is not a %s payload", element, element, a.typeName))
		}

		e, err := factory(ctx, m, bind)
		if err != nil {
			return nil, err
		}

		collection = append(collection, e)
	}

	return collection, nil
}

// RawAttribute stores the payload value untouched.
type RawAttribute struct {
	stateTagged
}

func Raw(states ...types.ResourceState) *RawAttribute {
	return &RawAttribute{stateTagged{states}}
}

func (a *RawAttribute) Convert(ctx context.Context, raw any, bind types.Fetcher) (any, error) {
	return raw, nil
}

func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}

	return 0, false
}
