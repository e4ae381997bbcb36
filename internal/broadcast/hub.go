package broadcast

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"shipping/internal/core/domain/model/shipment"
)

// TopicAdmins receives every shipment event.
const TopicAdmins = "admins"

// TopicUser names the topic carrying events about a user's own shipments.
func TopicUser(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// TopicShipment names the topic carrying events about a single shipment.
func TopicShipment(shipmentID int64) string {
	return fmt.Sprintf("shipment:%d", shipmentID)
}

// Principal identifies an authenticated subscriber.
type Principal struct {
	UserID int64
	Admin  bool
}

// Event is the frame delivered to subscribers. A connection subscribed to
// several matching topics receives one frame per topic.
type Event struct {
	Topic          string    `json:"topic"`
	Type           string    `json:"type"`
	ShipmentID     int64     `json:"shipment_id"`
	UserID         int64     `json:"user_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Hub routes shipment events to topic subscribers. It is explicit state:
// construct one instance at process start and hand it to the websocket
// adapter and to every publisher.
//
// A user may hold several simultaneous connections; each is tracked
// independently and each receives its own copy of every event.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Conn]struct{}
	logger *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[*Conn]struct{}),
		logger: logger.With("component", "broadcast.Hub"),
	}
}

// Connect registers a connection and joins it to the principal's user topic,
// plus the admins topic for admin principals.
func (h *Hub) Connect(conn *Conn, principal Principal) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.join(TopicUser(principal.UserID), conn)
	if principal.Admin {
		h.join(TopicAdmins, conn)
	}
}

// Subscribe joins the connection to a shipment topic.
func (h *Hub) Subscribe(conn *Conn, shipmentID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.join(TopicShipment(shipmentID), conn)
}

// Unsubscribe removes the connection from a shipment topic.
func (h *Hub) Unsubscribe(conn *Conn, shipmentID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leave(TopicShipment(shipmentID), conn)
}

// Disconnect removes the connection from every topic in one atomic step.
func (h *Hub) Disconnect(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic := range h.topics {
		h.leave(topic, conn)
	}
}

// PublishTransition fans a status change out to the owner topic, the
// shipment topic and the admins topic. Per-connection write failures are
// logged and swallowed so one dead subscriber never blocks the rest.
func (h *Hub) PublishTransition(descriptor shipment.TransitionDescriptor) {
	topics := []string{
		TopicUser(descriptor.UserID.Int64()),
		TopicShipment(descriptor.ShipmentID.Int64()),
		TopicAdmins,
	}

	for _, topic := range topics {
		event := Event{
			Topic:          topic,
			Type:           "shipment_status_changed",
			ShipmentID:     descriptor.ShipmentID.Int64(),
			UserID:         descriptor.UserID.Int64(),
			PreviousStatus: descriptor.Previous.Description(),
			NewStatus:      descriptor.New.Description(),
			Message:        descriptor.Message,
			OccurredAt:     descriptor.OccurredAt,
		}

		for _, conn := range h.members(topic) {
			if err := conn.Send(event); err != nil {
				h.logger.Warn("event delivery failed",
					"topic", topic,
					"shipmentId", event.ShipmentID,
					"error", err)
			}
		}
	}
}

// members snapshots a topic's connections so delivery happens outside the
// lock and racing disconnects cannot fault it.
func (h *Hub) members(topic string) []*Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*Conn, 0, len(h.topics[topic]))
	for conn := range h.topics[topic] {
		conns = append(conns, conn)
	}
	return conns
}

// join adds the connection to a topic. Callers hold the write lock.
func (h *Hub) join(topic string, conn *Conn) {
	members, ok := h.topics[topic]
	if !ok {
		members = make(map[*Conn]struct{})
		h.topics[topic] = members
	}
	members[conn] = struct{}{}
}

// leave removes the connection from a topic, dropping the topic once empty.
// Callers hold the write lock.
func (h *Hub) leave(topic string, conn *Conn) {
	members, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(members, conn)
	if len(members) == 0 {
		delete(h.topics, topic)
	}
}
