package track

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staykedarnath/internal/pkg/response"
)

type Handler struct {
	recorder     *Recorder
	dwell        time.Duration
	visibleRatio float64
}

func NewHandler(recorder *Recorder, dwell time.Duration, visibleRatio float64) *Handler {
	return &Handler{recorder: recorder, dwell: dwell, visibleRatio: visibleRatio}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/track/config", h.Config)
	rg.POST("/track/banners/:id/impression", h.Impression)
	rg.POST("/track/banners/:id/click", h.Click)
}

// Config tells the client when an impression counts: how long a banner must
// stay visible and at what visibility ratio.
func (h *Handler) Config(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"dwell_ms":      h.dwell.Milliseconds(),
		"visible_ratio": h.visibleRatio,
	})
}

type trackRequest struct {
	BannerID      int64  `json:"-"`
	SessionID     string `json:"session_id"`
	PageURL       string `json:"page_url"`
	Referrer      string `json:"referrer"`
	ViewportWidth int    `json:"viewport_width"`
}

// Impression records a banner impression. The response is always 204:
// tracking is non-critical and malformed or dropped events are discarded
// silently.
func (h *Handler) Impression(c *gin.Context) {
	if e, ok := h.parse(c); ok {
		h.recorder.RecordImpression(e)
	}
	response.Accepted(c)
}

// Click records a banner click; never deduplicated, same fire-and-forget
// contract as impressions.
func (h *Handler) Click(c *gin.Context) {
	if e, ok := h.parse(c); ok {
		h.recorder.RecordClick(e)
	}
	response.Accepted(c)
}

func (h *Handler) parse(c *gin.Context) (Event, bool) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return Event{}, false
	}

	bannerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bannerID <= 0 {
		return Event{}, false
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return Event{
		BannerID:      bannerID,
		SessionID:     sessionID,
		PageURL:       req.PageURL,
		Referrer:      req.Referrer,
		UserAgent:     c.GetHeader("User-Agent"),
		ViewportWidth: req.ViewportWidth,
	}, true
}
