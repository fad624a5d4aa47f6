package model

import (
	"context"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
	"github.com/openstride/strava-model/pkg/strava/units"
)

// Splits carry no id or resource state, so their attributes are state
// agnostic. The two variants differ only in the distance unit.
func splitSchema(distanceUnit string) *attributes.Schema {
	return attributes.NewSchema(map[string]types.Attribute{
		"distance":             attributes.Float().Unit(distanceUnit),
		"elapsed_time":         attributes.Int().Unit(units.Second),
		"elevation_difference": attributes.Float().Unit(distanceUnit),
		"moving_time":          attributes.Int().Unit(units.Second),
		"split":                attributes.Int(),
	})
}

var metricSplitSchema = splitSchema(units.Meter)
var standardSplitSchema = splitSchema(units.Foot)

type split struct {
	entities.Base
}

func (s *split) Distance() units.Quantity {
	return s.Quantity("distance")
}

func (s *split) ElapsedTime() units.Quantity {
	return s.Quantity("elapsed_time")
}

func (s *split) ElevationDifference() units.Quantity {
	return s.Quantity("elevation_difference")
}

func (s *split) MovingTime() units.Quantity {
	return s.Quantity("moving_time")
}

func (s *split) Split() int64 {
	return s.Int("split")
}

// MetricSplit is a metric unit split.
type MetricSplit struct {
	split
}

func NewMetricSplit() *MetricSplit {
	return &MetricSplit{split{Base: entities.NewBase(metricSplitSchema)}}
}

func DeserializeMetricSplit(ctx context.Context, raw map[string]any, bind types.Fetcher) (*MetricSplit, error) {
	return entities.Deserialize(ctx, NewMetricSplit(), raw, bind)
}

// StandardSplit is a standard (imperial) unit split.
type StandardSplit struct {
	split
}

func NewStandardSplit() *StandardSplit {
	return &StandardSplit{split{Base: entities.NewBase(standardSplitSchema)}}
}

func DeserializeStandardSplit(ctx context.Context, raw map[string]any, bind types.Fetcher) (*StandardSplit, error) {
	return entities.Deserialize(ctx, NewStandardSplit(), raw, bind)
}
