// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the stores
// (defined in internal/store) and the response cache to fulfill application
// features, while the API layer stays limited to HTTP concerns.
package service
