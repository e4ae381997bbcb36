// Package notifications holds the typed payloads of the emails queue and the
// handler that renders them into outbound mail.
package notifications
