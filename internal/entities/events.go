package entities

// ShipmentEvent names a lifecycle change published for downstream consumers.
type ShipmentEvent string

const (
	EventShipmentCreated       ShipmentEvent = "shipment.created"
	EventShipmentUpdated       ShipmentEvent = "shipment.updated"
	EventShipmentStatusChanged ShipmentEvent = "shipment.status_changed"
	EventShipmentDeleted       ShipmentEvent = "shipment.deleted"
)
