//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"countdown-timer/internal/domain/timer"
	"countdown-timer/internal/handler/api"
	resdto "countdown-timer/internal/handler/dto/response"
	"countdown-timer/internal/pkg/ptr"
	"countdown-timer/internal/usecase/commands"
	"countdown-timer/tests/common/httptest"
	commandsmock "countdown-timer/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSuggestionRouter(t *testing.T) (*gin.Engine, *commandsmock.MockSuggestionCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mock := commandsmock.NewMockSuggestionCommands(ctrl)

	router := gin.New()
	router.POST("/api/ai/suggest-timer", api.NewSuggestionHandler(mock).Suggest)
	return router, mock
}

func TestSuggestionHandler_Suggest(t *testing.T) {
	url := "/api/ai/suggest-timer"

	t.Run("success: returns the suggestion", func(t *testing.T) {
		router, mock := newSuggestionRouter(t)
		mock.EXPECT().Suggest(gomock.Any(), commands.SuggestTimerInput{Intent: ptr.Of("flash sale"), ProductTitle: "Hoodie"}).
			Return(&commands.TimerSuggestion{Type: timer.TypeFixed, DurationMinutes: 120, Headline: "Limited-time offer: ends soon! Hoodie"}, nil).
			Times(1)

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, map[string]any{"intent": "flash sale", "productTitle": "Hoodie"}, nil)

		var body resdto.SuggestionResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, resdto.SuggestionResponse{Type: "fixed", DurationMinutes: 120, Headline: "Limited-time offer: ends soon! Hoodie"}, body)
	})

	t.Run("error: validation failures are 400", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			msg  string
		}{
			{name: "absent", err: commands.ErrIntentRequired, msg: "'intent' is required"},
			{name: "blank", err: commands.ErrIntentEmpty, msg: "must not be empty"},
			{name: "too long", err: commands.ErrIntentTooLong, msg: "at most 200 characters"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router, mock := newSuggestionRouter(t)
				mock.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(t, router, http.MethodPost, url, map[string]any{"intent": "x"}, nil)
				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	t.Run("error: non-string intent is rejected before the use case", func(t *testing.T) {
		router, _ := newSuggestionRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodPost, url, map[string]any{"intent": 42}, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "'intent' is required and must be a string")
	})
}
