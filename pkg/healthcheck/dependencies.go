package healthcheck

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DatabaseChecker checks SQL database connectivity
type DatabaseChecker struct {
	db *sql.DB
}

// NewDatabaseChecker creates a database health checker
func NewDatabaseChecker(db *sql.DB) *DatabaseChecker {
	return &DatabaseChecker{db: db}
}

// Check pings the database
func (c *DatabaseChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{
		Status:      StatusHealthy,
		LastChecked: start,
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.db.PingContext(pingCtx); err != nil {
		check.Status = StatusUnhealthy
		check.Message = fmt.Sprintf("database ping failed: %v", err)
	}

	check.Duration = time.Since(start) / time.Millisecond
	return check
}

// DatasetChecker checks that a reference dataset loaded entries.
// An empty dataset degrades the service but does not make it unhealthy,
// requests still succeed with empty results.
type DatasetChecker struct {
	name string
	size func(ctx context.Context) (int, error)
}

// NewDatasetChecker creates a dataset health checker. The size function
// reports how many entries the dataset currently holds.
func NewDatasetChecker(name string, size func(ctx context.Context) (int, error)) *DatasetChecker {
	return &DatasetChecker{name: name, size: size}
}

// Check reports the dataset load state
func (c *DatasetChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{
		Status:      StatusHealthy,
		LastChecked: start,
	}

	count, err := c.size(ctx)
	switch {
	case err != nil:
		check.Status = StatusUnhealthy
		check.Message = fmt.Sprintf("%s dataset failed to load: %v", c.name, err)
	case count == 0:
		check.Status = StatusDegraded
		check.Message = fmt.Sprintf("%s dataset is empty", c.name)
	default:
		check.Message = fmt.Sprintf("%d entries loaded", count)
	}

	check.Duration = time.Since(start) / time.Millisecond
	return check
}
