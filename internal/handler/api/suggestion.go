package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "countdown-timer/internal/handler/dto/request"
	resdto "countdown-timer/internal/handler/dto/response"
	"countdown-timer/internal/handler/httperr"
	"countdown-timer/internal/pkg/errs"
	"countdown-timer/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	cmds commands.SuggestionCommands
}

func NewSuggestionHandler(cmds commands.SuggestionCommands) *SuggestionHandler {
	return &SuggestionHandler{cmds: cmds}
}

// @Summary Suggest timer
// @Description Suggest a timer type, duration and headline from a merchant's intent
// @Tags ai
// @Accept json
// @Produce json
// @Param request body reqdto.SuggestTimerRequest true "Suggestion request"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/ai/suggest-timer [post]
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req reqdto.SuggestTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrIntentRequired.Error(), nil)
		return
	}
	s, err := h.cmds.Suggest(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrIntentRequired),
			errs.Is(err, commands.ErrIntentEmpty),
			errs.Is(err, commands.ErrIntentTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate timer suggestion", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestion(s))
}
