package websocket

import (
	"log"
	"net/http"

	"binroute-backend/internal/middleware"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The map page is served from another origin during development.
		return true
	},
}

// HandleWebSocket upgrades the HTTP connection. Browsers cannot set an
// Authorization header on a websocket, so the token rides in the query
// string; the Auth middleware context is the fallback.
func HandleWebSocket(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userClaims middleware.UserClaims
		var ok bool

		if tokenString := r.URL.Query().Get("token"); tokenString != "" {
			userClaims, ok = middleware.ClaimsFromToken(tokenString)
		} else {
			userClaims, ok = middleware.GetUserFromContext(r)
		}
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		client := NewClient(userClaims.UserID, userClaims.Role, conn, hub)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
