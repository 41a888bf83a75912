package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anshiiika/autoelite-dealership/internal/domain"
	"github.com/anshiiika/autoelite-dealership/internal/service/locations"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLocationUseCase struct {
	mock.Mock
}

func (m *MockLocationUseCase) Lookup(ctx context.Context, input locations.LookupInput) (*locations.LookupResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locations.LookupResult), args.Error(1)
}

func newLocationRouter(service locations.LocationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewLocationHandler(service).Register(router.Group("/api/locations"))
	return router
}

func TestLocationHandler_Countries(t *testing.T) {
	service := &MockLocationUseCase{}
	router := newLocationRouter(service)

	service.On("Lookup", mock.Anything, locations.LookupInput{}).Return(&locations.LookupResult{
		Level: domain.LevelCountries,
		Names: []string{"India", "Japan"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/locations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Countries []string `json:"countries"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"India", "Japan"}, resp.Countries)
	service.AssertExpectations(t)
}

func TestLocationHandler_StatesResponseShape(t *testing.T) {
	service := &MockLocationUseCase{}
	router := newLocationRouter(service)

	service.On("Lookup", mock.Anything, locations.LookupInput{Level: "states", Country: "India"}).Return(&locations.LookupResult{
		Level:   domain.LevelStates,
		Country: "India",
		Names:   []string{"Goa", "Kerala"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/locations?level=states&country=India", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"country":"India","states":["Goa","Kerala"]}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestLocationHandler_CitiesResponseShape(t *testing.T) {
	service := &MockLocationUseCase{}
	router := newLocationRouter(service)

	service.On("Lookup", mock.Anything, locations.LookupInput{Level: "cities", Country: "India", State: "Goa"}).Return(&locations.LookupResult{
		Level:   domain.LevelCities,
		Country: "India",
		State:   "Goa",
		Names:   []string{"Margao", "Panaji"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/locations?level=cities&country=India&state=Goa", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"country":"India","state":"Goa","cities":["Margao","Panaji"]}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestLocationHandler_ValidationErrorIs400(t *testing.T) {
	service := &MockLocationUseCase{}
	router := newLocationRouter(service)

	service.On("Lookup", mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{Message: "country is required"}).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/locations?level=states", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"country is required"}`, w.Body.String())
}

func TestLocationHandler_UpstreamErrorIs500WithGenericMessage(t *testing.T) {
	service := &MockLocationUseCase{}
	router := newLocationRouter(service)

	upstreamErr := &domain.UpstreamError{Op: "/countries/states", Err: errors.New("status 502 from provider")}
	service.On("Lookup", mock.Anything, mock.Anything).Return(nil, upstreamErr).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/locations?level=states&country=India", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Unable to fetch locations"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "502")
}
