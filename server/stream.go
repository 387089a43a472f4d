package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vedantwpatil/trendbot/models"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type streamMessage struct {
	Type  string                       `json:"type"`
	Data  *models.SectorRecommendation `json:"data,omitempty"`
	Error string                       `json:"error,omitempty"`
}

// handleSectorStream pushes each sector recommendation as soon as it is
// ready, then a final "done" (or "error") message.
func (s *Server) handleSectorStream(w http.ResponseWriter, r *http.Request) {
	lookback, ok := intParam(r, "lookback_days", s.opts.LookbackDays)
	if !ok {
		writeError(w, http.StatusBadRequest, "lookback_days must be a positive integer")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// The hijacked connection is no longer watched by net/http, so a read
	// loop detects the client going away and stops the analysis.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	var writeErr error
	send := func(m streamMessage) {
		if writeErr != nil {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		writeErr = conn.WriteJSON(m)
	}

	err = s.an.EachSector(ctx, s.opts.Strategy, lookback, func(rec models.SectorRecommendation) {
		send(streamMessage{Type: "sector", Data: &rec})
	})
	if ctx.Err() != nil {
		s.log.Info().Msg("sector stream client disconnected")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("sector stream")
		send(streamMessage{Type: "error", Error: "Sector analysis failed"})
	} else {
		send(streamMessage{Type: "done"})
	}
	if writeErr != nil {
		s.log.Warn().Err(writeErr).Msg("websocket write failed")
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
