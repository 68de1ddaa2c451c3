package repository

import "context"

// Repository defines read access to service assignments.
type Repository interface {
	// ListClients returns the distinct active client names assigned to the person.
	ListClients(ctx context.Context, personnelID int64) ([]string, error)
	// ListServices returns the active service names assigned to the person for a client.
	ListServices(ctx context.Context, personnelID int64, client string) ([]string, error)
}
