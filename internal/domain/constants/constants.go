// Package constants holds shared identifiers that cross layer boundaries.
package constants

// Event publisher providers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Market event types emitted on entity lifecycle changes.
const (
	EventLinkRequested  = "link.requested"
	EventLinkApproved   = "link.approved"
	EventLinkDeclined   = "link.declined"
	EventOrderCreated   = "order.created"
	EventOrderAccepted  = "order.accepted"
	EventOrderRejected  = "order.rejected"
	EventOrderCompleted = "order.completed"
	EventOrderCancelled = "order.cancelled"
	EventComplaintFiled = "complaint.filed"
	EventMessagePosted  = "chat.message_posted"
)
