//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"rentacar/internal/domain/user"
	"rentacar/internal/handler/middleware"
	"rentacar/internal/infra/store"
	"rentacar/internal/usecase"
	"rentacar/tests/common/httptest"
	usecasemock "rentacar/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)

	mw := middleware.NewAuthMiddleware(s.mockAuth)
	s.router = gin.New()
	s.router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user": sess.User.Name})
	})
	s.router.GET("/open", mw.OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token resolves into a session", func() {
		sess := store.Session{ID: uuid.New(), User: user.User{Name: "Jane Doe"}}
		s.mockAuth.EXPECT().SessionFromToken(gomock.Any(), "valid-token").Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "valid-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Jane Doe")
	})

	s.Run("error: missing token gets the standard envelope", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in")
	})

	s.Run("error: stale token gets the standard envelope", func() {
		s.mockAuth.EXPECT().SessionFromToken(gomock.Any(), "stale-token").
			Return(store.Session{}, usecase.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "stale-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("no token passes through unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":false`)
	})

	s.Run("unresolvable token passes through unauthenticated", func() {
		s.mockAuth.EXPECT().SessionFromToken(gomock.Any(), "stale-token").
			Return(store.Session{}, usecase.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "stale-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":false`)
	})

	s.Run("valid token attaches the session", func() {
		sess := store.Session{ID: uuid.New(), User: user.User{Name: "Jane Doe"}}
		s.mockAuth.EXPECT().SessionFromToken(gomock.Any(), "valid-token").Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, "valid-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":true`)
	})
}
