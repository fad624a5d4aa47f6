package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
	stravaerrors "github.com/openstride/strava-model/pkg/strava/errors"
	"github.com/openstride/strava-model/pkg/strava/units"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath

func TestGetClubMembers(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/clubs/23/members"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`[{"id":1,"firstname":"Alice"},{"id":2,"firstname":"Bob"}]`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()), AccessToken("token"))

	members, err := c.GetClubMembers(context.Background(), 23)

	is.NoErr(err)
	is.Equal(len(members), 2)
	is.Equal(members[0]["firstname"], "Alice")
}

func TestGetGear(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/gear/b105763"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"id":"b105763","name":"Cannondale TT","distance":476612.9,"primary":true}`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()))

	gear, err := c.GetGear(context.Background(), "b105763")

	is.NoErr(err)
	is.Equal(gear["name"], "Cannondale TT")
}

func TestFetchActivityReturnsABoundTypedEntity(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/activities/46320211"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"id":46320211,"name":"Lunch Run","distance":2659.89,"moving_time":360}`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()))

	activity, err := Activity(context.Background(), c, 46320211)

	is.NoErr(err)
	is.Equal(activity.Name(), "Lunch Run")
	is.Equal(activity.Distance(), units.Meters(2659.89))
	is.Equal(activity.BindClient(), c)
}

func TestNotFoundMapsToSentinelError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(`{"message":"Record Not Found","errors":[{"resource":"Activity","field":"id","code":"invalid"}]}`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()))

	_, err := c.GetActivity(context.Background(), 12345)

	is.True(err != nil)
	is.True(errors.Is(err, stravaerrors.ErrNotFound))
}

func TestUnauthorizedMapsToSentinelError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusUnauthorized),
			response.Body([]byte(`{"message":"Authorization Error","errors":[{"resource":"Athlete","field":"access_token","code":"invalid"}]}`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()))

	_, err := c.GetAthlete(context.Background(), 1)

	is.True(errors.Is(err, stravaerrors.ErrUnauthorized))
}

func TestRateLimitMapsToSentinelError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusTooManyRequests),
			response.Body([]byte(`{"message":"Rate Limit Exceeded","errors":[{"resource":"Application","field":"rate limit","code":"exceeded"}]}`)),
		),
	)
	defer s.Close()

	c := New(BaseURL(s.URL()))

	_, err := c.GetSegment(context.Background(), 229781)

	is.True(errors.Is(err, stravaerrors.ErrRateLimited))
}
