//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"webhooknest/internal/infra"
	"webhooknest/internal/pkg/jwt"
	"webhooknest/internal/pkg/password"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"
	"webhooknest/tests/common/builder"
	commandsmock "webhooknest/tests/mock/commands"
	queriesmock "webhooknest/tests/mock/queries"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *commandsmock.MockUserRepository
	mockReadStore *queriesmock.MockUserReadStore
	commands      commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.commands = commands.NewAuthCommands(s.mockRepo, s.mockReadStore, jwt.NewService("test-secret", time.Hour))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("登録成功でトークンとユーザーを返す", func() {
		req := builder.NewUserBuilder().BuildRegisterDTO()
		returnUser := builder.NewUserBuilder().BuildReadModel()

		s.mockRepo.EXPECT().
			Create(gomock.Any(), req.Email, "test", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, passwordHash, apiKey string) (*queries.UserView, error) {
				// ハッシュは平文と一致検証できること、APIキーは規定の書式であること
				require.NoError(s.T(), password.ComparePassword(passwordHash, req.Password))
				require.True(s.T(), strings.HasPrefix(apiKey, "key_"))
				return returnUser, nil
			}).Times(1)

		result, err := s.commands.Register(ctx, req)
		require.NoError(s.T(), err)
		s.NotEmpty(result.Token)
		s.Equal(returnUser, result.User)
	})

	s.Run("メールアドレス重複でErrEmailTaken", func() {
		req := builder.NewUserBuilder().BuildRegisterDTO()
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert user", errors.New("duplicate"), infra.KindDuplicateKey)).
			Times(1)

		_, err := s.commands.Register(ctx, req)
		require.ErrorIs(s.T(), err, commands.ErrEmailTaken)
	})

	s.Run("入力不正でErrValidation", func() {
		req := builder.NewUserBuilder().
			With(func(b *builder.UserBuilder) { b.Password = "12345" }).
			BuildRegisterDTO()

		_, err := s.commands.Register(ctx, req)
		require.ErrorIs(s.T(), err, commands.ErrValidation)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(s.T(), err)

	s.Run("正しい認証情報でログインできる", func() {
		req := builder.NewUserBuilder().BuildLoginDTO()
		returnUser := builder.NewUserBuilder().BuildReadModel()

		s.mockReadStore.EXPECT().
			FindByEmail(gomock.Any(), req.Email).
			Return(returnUser, hash, nil).Times(1)

		result, err := s.commands.Login(ctx, req)
		require.NoError(s.T(), err)
		s.NotEmpty(result.Token)
		s.Equal(returnUser.Email, result.User.Email)
	})

	s.Run("パスワード不一致でErrInvalidCredentials", func() {
		req := builder.NewUserBuilder().
			With(func(b *builder.UserBuilder) { b.Password = "wrong-password" }).
			BuildLoginDTO()
		returnUser := builder.NewUserBuilder().BuildReadModel()

		s.mockReadStore.EXPECT().
			FindByEmail(gomock.Any(), req.Email).
			Return(returnUser, hash, nil).Times(1)

		_, err := s.commands.Login(ctx, req)
		require.ErrorIs(s.T(), err, commands.ErrInvalidCredentials)
	})

	s.Run("存在しないユーザーも同じエラーを返す", func() {
		req := builder.NewUserBuilder().BuildLoginDTO()

		s.mockReadStore.EXPECT().
			FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).
			Times(1)

		_, err := s.commands.Login(ctx, req)
		require.ErrorIs(s.T(), err, commands.ErrInvalidCredentials)
	})
}
