//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"rentacar/internal/domain/search"
	"rentacar/internal/handler/api"
	resdto "rentacar/internal/handler/dto/response"
	"rentacar/internal/usecase"
	"rentacar/tests/common/builder"
	"rentacar/tests/common/httptest"
	usecasemock "rentacar/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *usecasemock.MockCatalogUseCase
	handler     *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = usecasemock.NewMockCatalogUseCase(s.mockCtrl)
	s.handler = api.NewVehicleHandler(s.mockCatalog)

	s.router.GET("/api/vehicles", s.handler.List)
	s.router.GET("/api/vehicles/:id", s.handler.Get)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) TestList() {
	s.Run("success: forwards the parsed query and renders page links", func() {
		vehicles := builder.NewVehicleBuilder().BuildMany(9)
		query := search.ParseListQuery(url.Values{"page": {"2"}, "fuel": {"Diesel"}})
		list := &usecase.VehicleList{
			Page: search.Page{
				Items:      vehicles,
				Number:     2,
				TotalPages: 3,
				TotalItems: 21,
			},
			Query: query,
		}
		s.mockCatalog.EXPECT().ListVehicles(gomock.Any(), query).Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles?page=2&fuel=Diesel", nil, "")

		var response resdto.VehicleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 9)
		s.Equal(2, response.Page.Number)
		s.Equal(21, response.Page.TotalItems)
		s.Require().NotNil(response.Links.Prev)
		s.Require().NotNil(response.Links.Next)
		s.Contains(*response.Links.Prev, "fuel=Diesel")
		s.Contains(*response.Links.Next, "page=3")
		s.Equal("/api/vehicles", response.Links.Reset)
	})

	s.Run("success: first page of a single-page result has no prev or next", func() {
		list := &usecase.VehicleList{
			Page: search.Page{Number: 1, TotalPages: 1, TotalItems: 0},
		}
		s.mockCatalog.EXPECT().ListVehicles(gomock.Any(), gomock.Any()).Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles", nil, "")

		var response resdto.VehicleListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.Links.Prev)
		s.Nil(response.Links.Next)
	})

	s.Run("error: 502 when the catalog source is down", func() {
		s.mockCatalog.EXPECT().ListVehicles(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrVehicleSourceDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unavailable")
	})
}

func (s *VehicleHandlerTestSuite) TestGet() {
	s.Run("success: returns the vehicle", func() {
		v := builder.NewVehicleBuilder().WithID(7).Build()
		s.mockCatalog.EXPECT().GetVehicle(gomock.Any(), 7).Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/7", nil, "")

		var response resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(7, response.ID)
		s.Equal("Toyota", response.Make)
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/abc", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid vehicle ID")
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockCatalog.EXPECT().GetVehicle(gomock.Any(), 999).
			Return(builder.NewVehicleBuilder().Build(), usecase.ErrVehicleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/999", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Vehicle not found")
	})

	s.Run("error: 502 when the catalog data is malformed", func() {
		s.mockCatalog.EXPECT().GetVehicle(gomock.Any(), 7).
			Return(builder.NewVehicleBuilder().Build(), usecase.ErrVehicleDataBroken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/7", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unexpected data")
	})
}
