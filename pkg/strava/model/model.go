// Package model declares the concrete API datatypes on top of the
// generic attribute and entity layers. Each type is a flat declaration
// of named attributes plus typed accessors; the field sets follow the
// v3 API reference for each resource state.
package model

import (
	"context"

	"github.com/openstride/strava-model/pkg/strava/attributes"
	"github.com/openstride/strava-model/pkg/strava/entities"
	"github.com/openstride/strava-model/pkg/strava/types"
)

const (
	meta     = types.StateMeta
	summary  = types.StateSummary
	detailed = types.StateDetailed
)

// resourceStateSchema is the base for every resource stated entity.
var resourceStateSchema = attributes.NewSchema(map[string]types.Attribute{
	"resource_state": attributes.Int(meta, summary, detailed),
})

// identifiableSchema adds the numeric id most resources carry. Types
// with string ids (gear, maps) extend resourceStateSchema directly.
var identifiableSchema = resourceStateSchema.Extend(map[string]types.Attribute{
	"id": attributes.Int(meta, summary, detailed),
})

func init() {
	attributes.RegisterEntityType("Athlete", factory(DeserializeAthlete))
	attributes.RegisterEntityType("Activity", factory(DeserializeActivity))
	attributes.RegisterEntityType("ActivityComment", factory(DeserializeActivityComment))
	attributes.RegisterEntityType("Segment", factory(DeserializeSegment))
	attributes.RegisterEntityType("SegmentEffort", factory(DeserializeSegmentEffort))
	attributes.RegisterEntityType("BestEffort", factory(DeserializeBestEffort))
	attributes.RegisterEntityType("Club", factory(DeserializeClub))
	attributes.RegisterEntityType("Bike", factory(DeserializeBike))
	attributes.RegisterEntityType("Shoe", factory(DeserializeShoe))
	attributes.RegisterEntityType("Map", factory(DeserializeMap))
	attributes.RegisterEntityType("MetricSplit", factory(DeserializeMetricSplit))
	attributes.RegisterEntityType("StandardSplit", factory(DeserializeStandardSplit))
	attributes.RegisterEntityType("DistributionBucket", factory(DeserializeDistributionBucket))
	attributes.RegisterEntityType("LeaderboardEntry", factory(DeserializeLeaderboardEntry))
}

func factory[E entities.Populatable](deserialize func(context.Context, map[string]any, types.Fetcher) (E, error)) attributes.EntityFactory {
	return func(ctx context.Context, raw map[string]any, bind types.Fetcher) (types.Entity, error) {
		e, err := deserialize(ctx, raw, bind)
		if err != nil {
			return nil, err
		}

		return e, nil
	}
}

func collectionOf[E types.Entity](collection []types.Entity) []E {
	result := make([]E, 0, len(collection))

	for _, element := range collection {
		if e, ok := element.(E); ok {
			result = append(result, e)
		}
	}

	return result
}
