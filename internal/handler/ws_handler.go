package handler

import (
	"net/http"

	"github.com/taoTimTim/C2Hakathon2025/internal/chat"
	"github.com/taoTimTim/C2Hakathon2025/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *chat.Hub
	auth   *service.AuthService
	secret []byte
}

func NewWSHandler(hub *chat.Hub, auth *service.AuthService, secret string) *WSHandler {
	return &WSHandler{hub: hub, auth: auth, secret: []byte(secret)}
}

// @Summary Chat en tiempo real (WebSocket)
// @Description Eventos: join_room, leave_room, send_message, typing. El JWT va en ?token= porque los navegadores no mandan headers en WS.
// @Tags chat
// @Param token query string true "JWT"
// @Success 101
// @Router /ws [get]
func (h *WSHandler) Chat(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.secret, nil
	})
	if err != nil || !token.Valid {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	userID, _ := claims["sub"].(string)
	if userID == "" {
		http.Error(w, "invalid sub in token", http.StatusUnauthorized)
		return
	}

	name := userID
	if u, err := h.auth.GetUser(r.Context(), userID); err == nil && u != nil {
		name = u.Name
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}

	h.hub.Serve(conn, userID, name)
}
