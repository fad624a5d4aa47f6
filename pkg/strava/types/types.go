package types

import "context"

// ResourceState is the field completeness level of a payload as reported
// by the API. Payloads carry it in their resource_state attribute.
type ResourceState int

const (
	StateUndefined ResourceState = 0
	StateMeta      ResourceState = 1
	StateSummary   ResourceState = 2
	StateDetailed  ResourceState = 3
)

func (rs ResourceState) String() string {
	switch rs {
	case StateMeta:
		return "meta"
	case StateSummary:
		return "summary"
	case StateDetailed:
		return "detailed"
	default:
		return "undefined"
	}
}

// Attribute is class level metadata governing how one named field is
// converted during population. Descriptors are shared between all
// instances of an entity type and must not carry per instance state.
type Attribute interface {
	// ValidIn reports whether the attribute is present in payloads of
	// the given resource state. State agnostic attributes (splits,
	// distribution buckets) return true for any state.
	ValidIn(state ResourceState) bool

	// Convert turns a raw payload value into the typed value to store.
	// Converting an already converted value is a no-op. The bind client
	// is propagated so that nested entities stay bound.
	Convert(ctx context.Context, raw any, bind Fetcher) (any, error)
}

// Entity is a typed domain object deserializable from a payload.
type Entity interface {
	ResourceState() ResourceState
}

//go:generate moq -rm -out ../test/fetcher_mock.go . Fetcher

// Fetcher is the capability set this layer needs from the bound API
// client. Implementations perform the authenticated remote calls that
// back the lazy loaded relations; this layer never does I/O itself.
type Fetcher interface {
	GetClubMembers(ctx context.Context, clubID int64) ([]map[string]any, error)
	GetClubActivities(ctx context.Context, clubID int64) ([]map[string]any, error)
	GetGear(ctx context.Context, gearID string) (map[string]any, error)
}
