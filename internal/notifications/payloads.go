package notifications

// QueueEmails is the queue that all notification jobs are enqueued to.
const QueueEmails = "emails"

// Job-type tags.
const (
	KindShipmentCreated       = "shipment_created"
	KindShipmentStatusChanged = "shipment_status_changed"
)

// ShipmentCreatedPayload asks for a creation confirmation email.
type ShipmentCreatedPayload struct {
	ShipmentID     int64
	RecipientEmail string
	RecipientName  string
	ProductType    string
	City           string
}

// Kind returns the job-type tag.
func (ShipmentCreatedPayload) Kind() string { return KindShipmentCreated }

// ShipmentStatusChangedPayload asks for a status change email.
type ShipmentStatusChangedPayload struct {
	ShipmentID     int64
	RecipientEmail string
	RecipientName  string
	NewStatus      string
}

// Kind returns the job-type tag.
func (ShipmentStatusChangedPayload) Kind() string { return KindShipmentStatusChanged }
