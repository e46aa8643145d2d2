//go:build e2e

package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"webhooknest/internal/handler/dto/request"
	resdto "webhooknest/internal/handler/dto/response"
	"webhooknest/tests/common/httptest"
	"webhooknest/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) register(email, password string) *resdto.AuthResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
		request.RegisterRequest{Email: email, Password: password}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp resdto.AuthResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return &resp
}

func (s *authSuite) TestRegister() {
	s.Run("新規登録でトークンとAPIキーが返る", func() {
		resp := s.register("alice@example.com", "secret1")

		s.Equal("Registration successful", resp.Message)
		s.NotEmpty(resp.Token)
		s.Require().NotNil(resp.User)
		s.Equal("alice@example.com", resp.User.Email)
		s.True(strings.HasPrefix(resp.User.APIKey, "key_"))

		// 表示名はメールアドレスのローカルパートになる
		var name string
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT name FROM users WHERE email = $1", "alice@example.com").Scan(&name)
		s.Require().NoError(err)
		s.Equal("alice", name)
	})

	s.Run("メールアドレス重複は400", func() {
		s.register("dup@example.com", "secret1")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Email: "dup@example.com", Password: "another1"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Email already exists")
	})

	s.Run("バリデーションエラー", func() {
		cases := []struct {
			name     string
			email    string
			password string
			message  string
		}{
			{name: "不正なメールアドレス", email: "not-an-email", password: "secret1", message: "Invalid email format"},
			{name: "短すぎるパスワード", email: "bob@example.com", password: "12345", message: "Password must be at least 6 characters long"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
					request.RegisterRequest{Email: tc.email, Password: tc.password}, "")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, tc.message)
			})
		}
	})
}

func (s *authSuite) TestLogin() {
	s.Run("正しい認証情報でログインできる", func() {
		s.register("carol@example.com", "secret1")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "carol@example.com", Password: "secret1"}, "")

		var resp resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Login successful", resp.Message)
		s.NotEmpty(resp.Token)
		s.Equal("carol@example.com", resp.User.Email)
	})

	s.Run("誤った認証情報はどれも同じ400を返す", func() {
		cases := []struct {
			name     string
			email    string
			password string
		}{
			{name: "パスワード不一致", email: "carol@example.com", password: "wrong-password"},
			{name: "存在しないユーザー", email: "nobody@example.com", password: "secret1"},
			{name: "不正なメール書式", email: "broken", password: "secret1"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.register("carol@example.com", "secret1")
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: tc.email, Password: tc.password}, "")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid email or password")
			})
		}
	})
}

func (s *authSuite) TestMe() {
	s.Run("トークン付きで自分のプロフィールを取得できる", func() {
		resp := s.register("dave@example.com", "secret1")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, resp.Token)

		var me struct {
			Email  string `json:"email"`
			APIKey string `json:"api_key"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("dave@example.com", me.Email)
		s.Equal(resp.User.APIKey, me.APIKey)
	})

	s.Run("トークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized: No token provided")
	})

	s.Run("壊れたトークンは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-valid-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
