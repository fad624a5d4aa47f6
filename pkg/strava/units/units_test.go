package units_test

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/openstride/strava-model/pkg/strava/units"
)

func TestSecondsQuantityConvertsToDuration(t *testing.T) {
	is := is.New(t)

	is.Equal(units.Seconds(90).Duration(), 90*time.Second)
	is.Equal(units.Seconds(0.5).Duration(), 500*time.Millisecond)
}

func TestNonTimeQuantitiesHaveNoDuration(t *testing.T) {
	is := is.New(t)

	is.Equal(units.Meters(1000).Duration(), time.Duration(0))
}
