//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"webhooknest/internal/infra"
	"webhooknest/internal/usecase/commands"
	"webhooknest/tests/common/builder"
	alertmock "webhooknest/tests/mock/alert"
	commandsmock "webhooknest/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSlug = "aB3xY9_k2Lm0"

type IngestCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockIngestRepository
	mockNotifier *alertmock.MockNotifier
	commands     commands.IngestCommands
}

func (s *IngestCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockIngestRepository(s.mockCtrl)
	s.mockNotifier = alertmock.NewMockNotifier(s.mockCtrl)
	s.commands = commands.NewIngestCommands(s.mockRepo, s.mockNotifier)
}

func (s *IngestCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIngestCommandsSuite(t *testing.T) {
	suite.Run(t, new(IngestCommandsTestSuite))
}

func (s *IngestCommandsTestSuite) TestReceive() {
	ctx := context.Background()
	headers := map[string]string{"content-type": "application/json"}

	s.Run("正常な配信はリポジトリに保存される", func() {
		payload := json.RawMessage(`{"event":"push","ref":"main"}`)
		stored := builder.NewDeliveryBuilder().
			With(func(b *builder.DeliveryBuilder) { b.Payload = payload }).
			BuildReadModel()

		s.mockRepo.EXPECT().
			ReceiveBySlug(gomock.Any(), testSlug, payload, headers, commands.ReceivedStatusCode).
			Return(&stored, nil).Times(1)

		view, err := s.commands.Receive(ctx, testSlug, payload, headers)
		require.NoError(s.T(), err)

		// ペイロードはバイト列ではなく JSON として等価であれば良い
		if diff := cmp.Diff(stored, *view); diff != "" {
			s.T().Errorf("DeliveryView mismatch (-want +got):\n%s", diff)
		}
		s.Equal(int32(200), view.StatusCode)
		s.False(view.Replayed)
	})

	s.Run("不正な形式のスラグはストアに触れずに404相当", func() {
		for _, slug := range []string{"", "short", "way-too-long-slug", "bad/slug!234"} {
			_, err := s.commands.Receive(ctx, slug, json.RawMessage(`{}`), nil)
			require.ErrorIs(s.T(), err, commands.ErrEndpointNotFound)
		}
	})

	s.Run("未登録スラグはErrEndpointNotFound", func() {
		s.mockRepo.EXPECT().
			ReceiveBySlug(gomock.Any(), testSlug, gomock.Any(), gomock.Any(), commands.ReceivedStatusCode).
			Return(nil, infra.WrapRepoErr("webhook not found", errors.New("no rows"), infra.KindNotFound)).
			Times(1)

		_, err := s.commands.Receive(ctx, testSlug, json.RawMessage(`{}`), nil)
		require.ErrorIs(s.T(), err, commands.ErrEndpointNotFound)
	})

	s.Run("ストア障害はそのまま伝播する", func() {
		dbErr := infra.WrapRepoErr("insert delivery", errors.New("connection reset"))
		s.mockRepo.EXPECT().
			ReceiveBySlug(gomock.Any(), testSlug, gomock.Any(), gomock.Any(), commands.ReceivedStatusCode).
			Return(nil, dbErr).Times(1)

		_, err := s.commands.Receive(ctx, testSlug, json.RawMessage(`{}`), nil)
		require.Error(s.T(), err)
		require.NotErrorIs(s.T(), err, commands.ErrEndpointNotFound)
		require.True(s.T(), infra.IsKind(err, infra.KindDBFailure))
	})
}

func (s *IngestCommandsTestSuite) TestSuspiciousPayloadDetection() {
	ctx := context.Background()

	cases := []struct {
		name     string
		payload  string
		notified bool
	}{
		{name: "値にerrorを含む", payload: `{"status":"error"}`, notified: true},
		{name: "キーにerrorを含む", payload: `{"error_code":500}`, notified: true},
		{name: "大文字小文字は区別しない", payload: `{"status":"ERROR"}`, notified: true},
		{name: "単語の一部でも検知する", payload: `{"msg":"terrors ahead"}`, notified: true},
		{name: "通常のペイロードは通知しない", payload: `{"status":"ok"}`, notified: false},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			payload := json.RawMessage(tc.payload)
			stored := builder.NewDeliveryBuilder().
				With(func(b *builder.DeliveryBuilder) { b.Payload = payload }).
				BuildReadModel()

			s.mockRepo.EXPECT().
				ReceiveBySlug(gomock.Any(), testSlug, payload, gomock.Any(), commands.ReceivedStatusCode).
				Return(&stored, nil).Times(1)
			if tc.notified {
				s.mockNotifier.EXPECT().
					OnSuspiciousPayload(gomock.Any(), stored.WebhookID, payload).Times(1)
			}

			_, err := s.commands.Receive(ctx, testSlug, payload, nil)
			require.NoError(s.T(), err)
		})
	}
}

func (s *IngestCommandsTestSuite) TestNotifierRunsAfterPersist() {
	// ストアが失敗した場合、ペイロードが怪しくても通知しない
	ctx := context.Background()
	payload := json.RawMessage(`{"status":"error"}`)

	s.mockRepo.EXPECT().
		ReceiveBySlug(gomock.Any(), testSlug, payload, gomock.Any(), commands.ReceivedStatusCode).
		Return(nil, infra.WrapRepoErr("insert delivery", errors.New("boom"))).Times(1)

	_, err := s.commands.Receive(ctx, testSlug, payload, nil)
	require.Error(s.T(), err)
}
