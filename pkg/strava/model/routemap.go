package model

import (
	"context"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

var mapSchema = resourceStateSchema.Extend(map[string]types.Attribute{
	"id":               attributes.Text(summary, detailed),
	"polyline":         attributes.Text(summary, detailed),
	"summary_polyline": attributes.Text(summary, detailed),
})

// Map is the encoded polyline representation of an activity or segment
// route.
type Map struct {
	entities.Base
}

func NewMap() *Map {
	return &Map{Base: entities.NewBase(mapSchema)}
}

func DeserializeMap(ctx context.Context, raw map[string]any, bind types.Fetcher) (*Map, error) {
	return entities.Deserialize(ctx, NewMap(), raw, bind)
}

func (m *Map) ID() string {
	return m.Text("id")
}

func (m *Map) Polyline() string {
	return m.Text("polyline")
}

func (m *Map) SummaryPolyline() string {
	return m.Text("summary_polyline")
}
