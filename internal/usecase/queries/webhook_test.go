//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"webhooknest/internal/infra"
	"webhooknest/internal/pkg/config"
	"webhooknest/internal/usecase/queries"
	"webhooknest/tests/common/builder"
	queriesmock "webhooknest/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookQueriesTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockWebhooks   *queriesmock.MockWebhookReadStore
	mockDeliveries *queriesmock.MockDeliveryReadStore
	queries        queries.WebhookQueries
}

func (s *WebhookQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockWebhooks = queriesmock.NewMockWebhookReadStore(s.mockCtrl)
	s.mockDeliveries = queriesmock.NewMockDeliveryReadStore(s.mockCtrl)
	s.queries = queries.NewWebhookQueries(s.mockWebhooks, s.mockDeliveries, config.NewTestConfig())
}

func (s *WebhookQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookQueriesSuite(t *testing.T) {
	suite.Run(t, new(WebhookQueriesTestSuite))
}

func (s *WebhookQueriesTestSuite) TestListEndpoints() {
	ctx := context.Background()
	ownerID := uuid.New()
	views := []queries.WebhookView{
		*builder.NewWebhookBuilder().With(func(b *builder.WebhookBuilder) { b.UserID = ownerID }).BuildReadModel(),
	}

	s.mockWebhooks.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(views, nil).Times(1)

	got, err := s.queries.ListEndpoints(ctx, ownerID)
	require.NoError(s.T(), err)
	s.Equal(views, got)
}

func (s *WebhookQueriesTestSuite) TestListLogs() {
	ctx := context.Background()
	ownerID := uuid.New()
	webhookView := builder.NewWebhookBuilder().
		With(func(b *builder.WebhookBuilder) { b.UserID = ownerID }).
		BuildReadModel()

	s.Run("ページ指定はそのまま読み出しに渡る", func() {
		s.mockWebhooks.EXPECT().
			FindBySlugAndOwner(gomock.Any(), webhookView.Slug, ownerID).
			Return(webhookView, nil).Times(1)
		s.mockDeliveries.EXPECT().
			ListByWebhook(gomock.Any(), webhookView.ID, int32(50), int32(10)).
			Return([]queries.DeliveryView{}, nil).Times(1)

		result, err := s.queries.ListLogs(ctx, ownerID, webhookView.Slug, queries.LogPage{Limit: 50, Offset: 10})
		require.NoError(s.T(), err)
		s.Equal(webhookView, result.Webhook)
	})

	s.Run("limit未指定はデフォルト値にフォールバック", func() {
		s.mockWebhooks.EXPECT().
			FindBySlugAndOwner(gomock.Any(), webhookView.Slug, ownerID).
			Return(webhookView, nil).Times(1)
		s.mockDeliveries.EXPECT().
			ListByWebhook(gomock.Any(), webhookView.ID, int32(100), int32(0)).
			Return(nil, nil).Times(1)

		_, err := s.queries.ListLogs(ctx, ownerID, webhookView.Slug, queries.LogPage{})
		require.NoError(s.T(), err)
	})

	s.Run("limit過大は上限に丸める", func() {
		s.mockWebhooks.EXPECT().
			FindBySlugAndOwner(gomock.Any(), webhookView.Slug, ownerID).
			Return(webhookView, nil).Times(1)
		s.mockDeliveries.EXPECT().
			ListByWebhook(gomock.Any(), webhookView.ID, int32(500), int32(0)).
			Return(nil, nil).Times(1)

		_, err := s.queries.ListLogs(ctx, ownerID, webhookView.Slug, queries.LogPage{Limit: 10000, Offset: -5})
		require.NoError(s.T(), err)
	})

	s.Run("他人のスラグはErrWebhookNotFound", func() {
		s.mockWebhooks.EXPECT().
			FindBySlugAndOwner(gomock.Any(), webhookView.Slug, ownerID).
			Return(nil, infra.WrapRepoErr("webhook not found", errors.New("no rows"), infra.KindNotFound)).
			Times(1)

		_, err := s.queries.ListLogs(ctx, ownerID, webhookView.Slug, queries.LogPage{})
		require.ErrorIs(s.T(), err, queries.ErrWebhookNotFound)
	})
}
