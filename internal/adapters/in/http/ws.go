package http

import (
	"net/http"

	"shipping/internal/broadcast"
	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/websocket"
)

// wsClientFrame is the inbound message format on the websocket: clients may
// join or leave shipment topics at will. Membership in the user topic and
// the admins topic is derived from the token, not client-controlled.
type wsClientFrame struct {
	Action     string `json:"action"`
	ShipmentID int64  `json:"shipment_id"`
}

const (
	wsActionSubscribe   = "subscribe_shipment"
	wsActionUnsubscribe = "unsubscribe_shipment"
)

// ServeWS handles GET /ws - upgrades to a websocket and registers the
// connection with the broadcast hub. The token travels as a query parameter
// since browsers cannot set headers on websocket handshakes.
func (s *Server) ServeWS(ctx echo.Context) error {
	claims, err := auth.ParseAccessToken(s.tokenCfg, ctx.QueryParam("token"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	principal := broadcast.Principal{
		UserID: claims.UserID,
		Admin:  claims.Role == user.RoleAdmin,
	}

	handler := websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()

		conn := broadcast.NewConn(ws)
		s.hub.Connect(conn, principal)
		defer s.hub.Disconnect(conn)

		for {
			var frame wsClientFrame
			if err := websocket.JSON.Receive(ws, &frame); err != nil {
				return
			}

			if frame.ShipmentID <= 0 {
				continue
			}

			switch frame.Action {
			case wsActionSubscribe:
				s.hub.Subscribe(conn, frame.ShipmentID)
			case wsActionUnsubscribe:
				s.hub.Unsubscribe(conn, frame.ShipmentID)
			}
		}
	})

	handler.ServeHTTP(ctx.Response(), ctx.Request())
	return nil
}
