//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/infra"
	"countdown-timer/internal/pkg/clock"
	"countdown-timer/internal/pkg/errs"
	"countdown-timer/internal/pkg/ptr"
	"countdown-timer/internal/usecase/commands"
	sharedmock "countdown-timer/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimerCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *sharedmock.MockTimerRepository
	clock    *clock.MockClock
	cmds     commands.TimerCommands
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func (s *TimerCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = sharedmock.NewMockTimerRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.cmds = commands.NewTimerCommands(s.repo, s.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *TimerCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimerCommandsSuite(t *testing.T) {
	suite.Run(t, new(TimerCommandsTestSuite))
}

func validFixedInput() commands.CreateTimerInput {
	return commands.CreateTimerInput{
		Shop:      "demo-store",
		Name:      "Weekend sale",
		ProductID: "gid://shopify/Product/1",
		Type:      "fixed",
		StartAt:   "2025-06-01T10:00:00Z",
		EndAt:     "2025-06-01T14:00:00Z",
	}
}

func echoCreate(_ context.Context, t *timer.Timer) (*timer.Timer, error) {
	return t, nil
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TimerCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: fixed timer", func() {
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(1)

		got, err := s.cmds.Create(ctx, validFixedInput())
		s.Require().NoError(err)
		s.Equal(timer.TypeFixed, got.Type())
		s.Equal("demo-store", got.Shop())
		s.Equal(fixedNow, got.CreatedAt())
		s.NotEqual(uuid.Nil, got.ID())
		s.Require().NotNil(got.StartAt())
		s.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), *got.StartAt())
		s.Nil(got.DurationMinutes())
	})

	s.Run("success: type defaults to fixed", func() {
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(1)

		in := validFixedInput()
		in.Type = ""
		got, err := s.cmds.Create(ctx, in)
		s.Require().NoError(err)
		s.Equal(timer.TypeFixed, got.Type())
	})

	s.Run("success: evergreen timer without dates", func() {
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(1)

		got, err := s.cmds.Create(ctx, commands.CreateTimerInput{
			Shop:            "demo-store",
			Name:            "Always on",
			ProductID:       "gid://shopify/Product/1",
			Type:            "evergreen",
			DurationMinutes: ptr.Of(30),
		})
		s.Require().NoError(err)
		s.Equal(timer.TypeEvergreen, got.Type())
		s.Nil(got.StartAt())
		s.Nil(got.EndAt())
		s.Require().NotNil(got.DurationMinutes())
		s.Equal(30, *got.DurationMinutes())
	})

	s.Run("success: evergreen ignores supplied dates", func() {
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate).Times(1)

		got, err := s.cmds.Create(ctx, commands.CreateTimerInput{
			Shop:            "demo-store",
			Name:            "Always on",
			ProductID:       "p",
			Type:            "evergreen",
			StartAt:         "garbage",
			DurationMinutes: ptr.Of(5),
		})
		s.Require().NoError(err)
		s.Nil(got.StartAt())
	})

	errorCases := []struct {
		name    string
		mutate  func(*commands.CreateTimerInput)
		errIs   error
		missing []string
	}{
		{
			name:    "fixed missing endAt names endAt",
			mutate:  func(in *commands.CreateTimerInput) { in.EndAt = "" },
			errIs:   timer.ErrMissingFields,
			missing: []string{"endAt"},
		},
		{
			name:    "missing name and productId",
			mutate:  func(in *commands.CreateTimerInput) { in.Name, in.ProductID = "", " " },
			errIs:   timer.ErrMissingFields,
			missing: []string{"name", "productId"},
		},
		{
			name: "evergreen missing duration",
			mutate: func(in *commands.CreateTimerInput) {
				in.Type = "evergreen"
			},
			errIs:   timer.ErrMissingFields,
			missing: []string{"durationMinutes"},
		},
		{
			name: "evergreen zero duration",
			mutate: func(in *commands.CreateTimerInput) {
				in.Type = "evergreen"
				in.DurationMinutes = ptr.Of(0)
			},
			errIs: timer.ErrInvalidDuration,
		},
		{
			name:   "unknown type",
			mutate: func(in *commands.CreateTimerInput) { in.Type = "recurring" },
			errIs:  timer.ErrInvalidType,
		},
		{
			name:   "unparseable startAt",
			mutate: func(in *commands.CreateTimerInput) { in.StartAt = "tomorrow" },
			errIs:  timer.ErrInvalidInstant,
		},
		{
			name:   "inverted window",
			mutate: func(in *commands.CreateTimerInput) { in.StartAt, in.EndAt = in.EndAt, in.StartAt },
			errIs:  timer.ErrInvalidWindow,
		},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			in := validFixedInput()
			tc.mutate(&in)

			got, err := s.cmds.Create(ctx, in)
			s.Require().Error(err)
			s.Nil(got)
			s.True(errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			if tc.missing != nil {
				var mf *timer.MissingFieldsError
				s.Require().True(errs.As(err, &mf))
				s.Equal(tc.missing, mf.Fields)
			}
		})
	}

	s.Run("error: repository failure is marked", func() {
		repoErr := infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to create timer", errors.New("down"))
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repoErr).Times(1)

		got, err := s.cmds.Create(ctx, validFixedInput())
		s.Require().Error(err)
		s.Nil(got)
		s.True(errs.Is(err, commands.ErrTimerCreationFailed))
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

// ================================================================================
// TestTrackImpression
// ================================================================================

func (s *TimerCommandsTestSuite) TestTrackImpression() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success: returns new count", func() {
		s.repo.EXPECT().IncrementImpression(gomock.Any(), id).Return(int64(3), nil).Times(1)

		got, err := s.cmds.TrackImpression(ctx, id)
		s.Require().NoError(err)
		s.Equal(int64(3), got)
	})

	s.Run("error: unknown timer", func() {
		s.repo.EXPECT().IncrementImpression(gomock.Any(), id).
			Return(int64(0), infra.WrapRepoErr(nil, infra.KindNotFound, "timer not found", nil)).Times(1)

		_, err := s.cmds.TrackImpression(ctx, id)
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrTimerNotFound))
	})

	s.Run("error: storage failure is not reported as not found", func() {
		s.repo.EXPECT().IncrementImpression(gomock.Any(), id).
			Return(int64(0), infra.WrapRepoErr(nil, infra.KindDBFailure, "failed", errors.New("io"))).Times(1)

		_, err := s.cmds.TrackImpression(ctx, id)
		s.Require().Error(err)
		s.False(errs.Is(err, commands.ErrTimerNotFound))
	})
}
