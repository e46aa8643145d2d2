//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"webhooknest/internal/handler/api"
	resdto "webhooknest/internal/handler/dto/response"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"
	"webhooknest/tests/common/builder"
	"webhooknest/tests/common/httptest"
	"webhooknest/tests/common/testutil"
	commandsmock "webhooknest/tests/mock/commands"
	queriesmock "webhooknest/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	meUserID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.meUserID = uuid.New()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.meUserID)
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := builder.NewUserBuilder().BuildRegisterDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 201 Created with token and user", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Registration successful", response.Message)
		s.Equal("test-jwt-token", response.Token)
		s.Equal(returnUser.Email, response.User.Email)
		s.True(strings.HasPrefix(response.User.APIKey, "key_"))
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "missing field: password", mutate: testutil.Field("password", nil)},
			{name: "empty email", mutate: testutil.Field("email", "")},
			{name: "empty password", mutate: testutil.Field("password", "")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email and password are required")
			})
		}
	})

	s.Run("error: 400 Bad Request for taken email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email already exists")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrTokenGeneration).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Registration failed")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewUserBuilder().BuildLoginDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Login successful", response.Message)
		s.Equal(returnUser.Email, response.User.Email)
	})

	s.Run("error: 400 Bad Request with one generic message for bad credentials", func() {
		// 存在しないユーザーもパスワード不一致も同じ応答になること
		for _, cmdErr := range []error{commands.ErrInvalidCredentials, commands.ErrValidation} {
			s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
				Return(nil, cmdErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid email or password")
		}
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrTokenGeneration).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Login failed")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns 200 OK with current user", func() {
		returnUser := builder.NewUserBuilder().
			With(func(b *builder.UserBuilder) { b.ID = s.meUserID }).
			BuildReadModel()

		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.meUserID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.ID, response.ID)
		s.Equal(returnUser.APIKey, response.APIKey)
	})

	s.Run("error: 401 Unauthorized without user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when the account vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.meUserID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
