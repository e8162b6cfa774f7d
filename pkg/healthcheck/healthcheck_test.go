package healthcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func staticChecker(status Status, message string) Checker {
	return CheckerFunc(func(ctx context.Context) Check {
		return Check{Status: status, Message: message, LastChecked: time.Now()}
	})
}

func TestCheck_AllHealthy(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusHealthy, ""))
	hc.Register("recipes", staticChecker(StatusHealthy, "42 entries loaded"))

	response := hc.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Len(t, response.Checks, 2)
}

func TestCheck_DegradedDoesNotFailReadiness(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("nutrition", staticChecker(StatusDegraded, "nutrition dataset is empty"))

	response := hc.Check(context.Background())
	assert.Equal(t, StatusDegraded, response.Status)

	rec := httptest.NewRecorder()
	hc.ReadinessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheck_UnhealthyWins(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())
	hc.Register("database", staticChecker(StatusUnhealthy, "database ping failed"))
	hc.Register("recipes", staticChecker(StatusHealthy, ""))

	response := hc.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, response.Status)

	rec := httptest.NewRecorder()
	hc.Handler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheck_CachesResponses(t *testing.T) {
	calls := 0
	hc := New("1.0.0", zap.NewNop())
	hc.Register("counter", CheckerFunc(func(ctx context.Context) Check {
		calls++
		return Check{Status: StatusHealthy}
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 1, calls)
}

func TestCheck_CacheExpires(t *testing.T) {
	calls := 0
	hc := New("1.0.0", zap.NewNop())
	hc.SetCacheTTL(0)
	hc.Register("counter", CheckerFunc(func(ctx context.Context) Check {
		calls++
		return Check{Status: StatusHealthy}
	}))

	hc.Check(context.Background())
	hc.Check(context.Background())

	assert.Equal(t, 2, calls)
}

func TestLivenessHandler(t *testing.T) {
	hc := New("1.0.0", zap.NewNop())

	rec := httptest.NewRecorder()
	hc.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

func TestDatasetChecker(t *testing.T) {
	loaded := NewDatasetChecker("recipes", func(ctx context.Context) (int, error) {
		return 12, nil
	})
	check := loaded.Check(context.Background())
	assert.Equal(t, StatusHealthy, check.Status)
	assert.Contains(t, check.Message, "12 entries")

	empty := NewDatasetChecker("recipes", func(ctx context.Context) (int, error) {
		return 0, nil
	})
	check = empty.Check(context.Background())
	assert.Equal(t, StatusDegraded, check.Status)

	failing := NewDatasetChecker("recipes", func(ctx context.Context) (int, error) {
		return 0, errors.New("no such file")
	})
	check = failing.Check(context.Background())
	require.Equal(t, StatusUnhealthy, check.Status)
	assert.Contains(t, check.Message, "no such file")
}
