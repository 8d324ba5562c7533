package entry

import "context"

// Aggregate summarizes the entries reported for one cryptocurrency
type Aggregate struct {
	Cryptocurrency string            `json:"cryptocurrency"`
	Count          int               `json:"count"`
	AverageScore   float64           `json:"average_score"`
	LevelCounts    map[RiskLevel]int `json:"level_counts"`
}

// Repository defines the interface for risk entry persistence
type Repository interface {
	// Add recomputes the entry score, persists it and returns the stored
	// entry with its assigned ID
	Add(ctx context.Context, e *Entry) (*Entry, error)

	// FindByID retrieves an entry by its ID
	FindByID(ctx context.Context, id int64) (*Entry, error)

	// FindAll retrieves all entries, newest report first
	FindAll(ctx context.Context) ([]*Entry, error)

	// FindByCryptocurrency retrieves entries whose name matches case-insensitively
	FindByCryptocurrency(ctx context.Context, name string) ([]*Entry, error)

	// Aggregate computes count, average score and per-level counts for a cryptocurrency
	Aggregate(ctx context.Context, name string) (Aggregate, error)

	// Delete removes an entry by its ID
	Delete(ctx context.Context, id int64) error
}
