// Package broadcast fans shipment status changes out to websocket
// subscribers over named topics: the shipment owner's user topic, the
// per-shipment topic, and the admins topic.
//
// Delivery is best effort. Failures on individual connections are swallowed
// so the originating operation and other subscribers are never affected.
package broadcast
