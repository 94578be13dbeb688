package domain

// MigrationItem is the migration unit currently being executed: one
// account of one app moving to one destination address. The orchestrator
// holds at most one at a time.
type MigrationItem struct {
	ID          string
	AppID       AppID
	Address     string
	Path        string
	Destination string
}

// MigrationResult is the aggregate outcome of a migration batch. Total
// counts every completed attempt, successful or not.
type MigrationResult struct {
	Success int
	Total   int
}
