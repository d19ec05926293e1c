// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EventTypeOrderPlaced is the attribute value carried by order placement events.
	EventTypeOrderPlaced = "order.placed"

	// HeaderUserEmail carries the caller identity for clients without a token.
	HeaderUserEmail = "user-email"
	// QueryUserEmail is the query fallback for HeaderUserEmail.
	QueryUserEmail = "userEmail"

	// DeliveryDateLayout is the calendar date layout accepted for delivery dates.
	DeliveryDateLayout = "2006-01-02"
)
