package entities_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	stravaerrors "github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/test"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

var thingSchema = attributes.NewSchema(map[string]types.Attribute{
	"resource_state": attributes.Int(types.StateMeta, types.StateSummary, types.StateDetailed),
	"id":             attributes.Int(types.StateMeta, types.StateSummary, types.StateDetailed),
	"name":           attributes.Text(types.StateSummary, types.StateDetailed),
	"distance":       attributes.Float(types.StateSummary, types.StateDetailed).Unit(units.Meter),
	"start_date":     attributes.Timestamp(types.StateSummary, types.StateDetailed),
})

type thing struct {
	entities.Base
}

func newThing() *thing {
	return &thing{Base: entities.NewBase(thingSchema)}
}

func TestPopulationRoundTripsDeclaredFields(t *testing.T) {
	is := is.New(t)

	e, err := entities.Deserialize(context.Background(), newThing(), map[string]any{
		"resource_state": float64(2),
		"id":             float64(12345),
		"name":           "Morning Ride",
		"distance":       4475.4,
		"start_date":     "2013-03-29T13:49:35Z",
	}, nil)

	is.NoErr(err)
	is.Equal(e.ResourceState(), types.StateSummary)
	is.Equal(e.Int("id"), int64(12345))
	is.Equal(e.Text("name"), "Morning Ride")
	is.Equal(e.Quantity("distance"), units.Meters(4475.4))
	is.Equal(e.Time("start_date"), time.Date(2013, 3, 29, 13, 49, 35, 0, time.UTC))
}

func TestPopulationIgnoresUndeclaredKeys(t *testing.T) {
	is := is.New(t)

	e, err := entities.Deserialize(context.Background(), newThing(), map[string]any{
		"id":               float64(1),
		"suffer_score":     float64(99),
		"undocumented_obj": map[string]any{"nested": true},
	}, nil)

	is.NoErr(err)
	is.Equal(e.Int("id"), int64(1))
	is.True(!e.IsSet("suffer_score"))
}

func TestPopulationFailureKeepsPreviouslySetKeys(t *testing.T) {
	is := is.New(t)

	e := newThing()
	err := e.FromRaw(context.Background(), map[string]any{
		"id": float64(1),
	})
	is.NoErr(err)

	err = e.FromRaw(context.Background(), map[string]any{
		"name": float64(666),
	})

	is.True(err != nil)
	is.True(errors.Is(err, stravaerrors.ErrDeserialization))
	is.Equal(e.Int("id"), int64(1))
}

func TestUnsetFieldsReportNotSetAndReturnZeroValues(t *testing.T) {
	is := is.New(t)

	e, err := entities.Deserialize(context.Background(), newThing(), map[string]any{}, nil)

	is.NoErr(err)
	is.True(!e.IsSet("name"))
	is.Equal(e.Text("name"), "")
	is.Equal(e.LatLng("start_latlng"), nil)
}

func TestAssertBindClientFailsWhenUnbound(t *testing.T) {
	is := is.New(t)

	e := newThing()
	err := e.AssertBindClient()

	is.True(err != nil)
	is.True(errors.Is(err, stravaerrors.ErrUnboundEntity))
}

func TestHydrateRequiresABoundClient(t *testing.T) {
	is := is.New(t)

	e := newThing()
	err := e.Hydrate(context.Background())

	is.True(errors.Is(err, stravaerrors.ErrUnboundEntity))
}

func TestHydrateIsNotImplementedYet(t *testing.T) {
	is := is.New(t)

	e := newThing()
	e.Bind(&test.FetcherMock{})

	err := e.Hydrate(context.Background())

	is.True(errors.Is(err, stravaerrors.ErrNotImplemented))
}
