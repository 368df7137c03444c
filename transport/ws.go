package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
)

// serveWS upgrades to a WebSocket carrying one JSON inbound message per text
// frame and one JSON response per reply frame. The user id comes from the
// user_id query parameter and is subject to the same allow-list as HTTP.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id query parameter is required")
		return
	}
	if !h.allowedUser(userID) {
		h.logger.Info("websocket from unauthorized user rejected", "user_id", userID)
		writeError(w, http.StatusForbidden, "user not allowed")
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
	if err != nil {
		h.logger.Error("websocket accept failed", "user_id", userID, "error", err)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "conversation ended"); closeErr != nil {
			h.logger.Debug("websocket close", "user_id", userID, "error", closeErr)
		}
	}()

	ctx := r.Context()
	for {
		var in struct {
			Text string `json:"text"`
		}
		typ, data, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				h.logger.Debug("websocket read failed", "user_id", userID, "error", err)
			}
			return
		}
		if typ != websocket.MessageText {
			continue
		}
		if err := json.Unmarshal(data, &in); err != nil {
			h.writeWS(ctx, ws, map[string]string{"error": "invalid message"})
			continue
		}

		resp, handleErr := h.bot.Handle(ctx, userID, in.Text)
		if handleErr != nil {
			h.logger.Error("turn failed", "user_id", userID, "error", handleErr)
		}
		h.writeWS(ctx, ws, resp)
	}
}

func (h *Handler) writeWS(ctx context.Context, ws *websocket.Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		h.logger.Debug("websocket write failed", "error", err)
	}
}
