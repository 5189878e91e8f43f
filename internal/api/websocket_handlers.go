package api

import (
	"net/http"
	"permit-portal/internal/apperror"
	"permit-portal/internal/auth"
	"permit-portal/internal/websocket"
)

// ServeWsHandler upgrades to a websocket that receives the caller's journal
// events. Browsers cannot set headers on the handshake, so the token comes
// from the query string.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		s.logger.Debug(r.Context(), "ws connection attempt without token")
		s.writeError(w, r, apperror.Unauthorized("Token required"))
		return
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil {
		s.logger.Debug(r.Context(), "ws connection attempt with invalid token", "error", err)
		s.writeError(w, r, apperror.Unauthorized("Invalid or expired token"))
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.UserID)
	if !s.wsHub.Register(client) {
		s.logger.Debug(r.Context(), "ws connection refused, hub stopped", "user_id", claims.UserID)
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
