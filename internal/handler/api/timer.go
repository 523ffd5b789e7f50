package api

import (
	"errors"
	"io"
	"net/http"

	"countdown-timer/internal/domain/timer"
	reqdto "countdown-timer/internal/handler/dto/request"
	resdto "countdown-timer/internal/handler/dto/response"
	"countdown-timer/internal/handler/httperr"
	"countdown-timer/internal/handler/middleware"
	"countdown-timer/internal/pkg/errs"
	"countdown-timer/internal/usecase/commands"
	"countdown-timer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidDate       = "Invalid date format for startAt or endAt"
	msgProductIDRequired = "Missing required query parameter: productId"
	msgTimerNotFound     = "Timer not found"
	msgInternal          = "Internal server error"
)

type TimerHandler struct {
	cmds commands.TimerCommands
	q    queries.TimerQueries
}

func NewTimerHandler(cmds commands.TimerCommands, q queries.TimerQueries) *TimerHandler {
	return &TimerHandler{cmds: cmds, q: q}
}

type missingFieldsDetail struct {
	Missing []string `json:"missing"`
}

// @Summary Create timer
// @Description Create a fixed-window or evergreen countdown timer for a product
// @Tags timers
// @Accept json
// @Produce json
// @Param shop query string false "Shop domain"
// @Param X-Shop-Domain header string false "Shop domain"
// @Param request body reqdto.CreateTimerRequest true "Create timer request"
// @Success 201 {object} resdto.TimerResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/timers [post]
func (h *TimerHandler) Create(c *gin.Context) {
	var req reqdto.CreateTimerRequest
	// an empty body is reported as missing fields below
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	shop, _ := middleware.GetShop(c)

	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(shop))
	if err != nil {
		var missing *timer.MissingFieldsError
		switch {
		case errs.As(err, &missing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, missing.Error(), missingFieldsDetail{Missing: missing.Fields})
		case errs.Is(err, timer.ErrInvalidInstant):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidDate, nil)
		case errs.Is(err, timer.ErrInvalidType),
			errs.Is(err, timer.ErrInvalidWindow),
			errs.Is(err, timer.ErrInvalidDuration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimer(created))
}

// @Summary List timers
// @Description List every timer in creation order
// @Tags timers
// @Produce json
// @Success 200 {array} resdto.TimerResponse
// @Failure 500 {object} httperr.Response
// @Router /api/timers [get]
func (h *TimerHandler) List(c *gin.Context) {
	timers, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimerList(timers))
}

// @Summary Active timer for a product
// @Description Resolve the timer the storefront widget should show. 204 when none is active.
// @Tags timers
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {object} resdto.TimerResponse
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/timers/active [get]
func (h *TimerHandler) Active(c *gin.Context) {
	t, ok, err := h.q.Active(c.Request.Context(), c.Query("productId"))
	if err != nil {
		if errs.Is(err, queries.ErrProductIDRequired) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgProductIDRequired, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimer(t))
}

// @Summary Record impression
// @Description Increment the impression counter of a timer
// @Tags timers
// @Produce json
// @Param id path string true "Timer ID"
// @Success 200 {object} resdto.ImpressionResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/timers/{id}/impression [post]
func (h *TimerHandler) Impression(c *gin.Context) {
	// a malformed id cannot name a stored timer
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, msgTimerNotFound, nil)
		return
	}
	count, err := h.cmds.TrackImpression(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, commands.ErrTimerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgTimerNotFound, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ImpressionResponse{Impressions: count})
}
