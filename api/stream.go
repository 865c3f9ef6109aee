package api

import (
	"github.com/gin-gonic/gin"
	"pocket-budget/store"
)

// StreamBudget pushes the snapshot as server-sent events
// @Summary Stream budget snapshots
// @Description Sends a "snapshot" event on connect and after every accepted change
// @Tags budget
// @Produce text/event-stream
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} SnapshotResponse
// @Failure 401 {object} ErrorResponse
// @Router /budget/stream [get]
func (h *Handler) StreamBudget(c *gin.Context) {
	// Only the latest state matters, so a slow client skips intermediate ones
	updates := make(chan store.State, 1)
	unsubscribe := h.Store.Subscribe(func(st store.State) {
		select {
		case updates <- st:
			return
		default:
		}
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- st:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("snapshot", h.snapshotResponse(h.Store.GetState()))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case st := <-updates:
			c.SSEvent("snapshot", h.snapshotResponse(st))
			c.Writer.Flush()
		}
	}
}
