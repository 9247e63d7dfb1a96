package ledger

import "github.com/sony/gobreaker"

var (
	// MaxNumOfFailingRequests is the request count after which the breaker may trip.
	MaxNumOfFailingRequests = 10
	// FailingRatio is the failure ratio that trips the breaker.
	FailingRatio = 0.6
)

// newCircuitBreaker trips once more than MaxNumOfFailingRequests were made and
// at least FailingRatio of them failed.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
		},
	})
}
