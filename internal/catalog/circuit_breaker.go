// Indiepick - Indie Game Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiepick

package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/indiepick/internal/logging"
	"github.com/tomtom215/indiepick/internal/metrics"
	"github.com/tomtom215/indiepick/internal/models"
)

// BreakerName is the circuit breaker name used in logs and metrics.
const BreakerName = "rawg-api"

// Ensure CircuitBreakerClient implements Catalog
var _ Catalog = (*CircuitBreakerClient)(nil)

// CircuitBreakerClient wraps a Catalog with the circuit breaker pattern so a
// failing upstream is not hammered by every incoming request.
//
// A 404 on a detail lookup and a canceled caller context do not count as
// failures: neither says anything about upstream health.
type CircuitBreakerClient struct {
	next Catalog
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewCircuitBreakerClient wraps next with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(next Catalog) *CircuitBreakerClient {
	cbName := BreakerName

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening RAWG circuit")
			}

			return shouldTrip
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] RAWG state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		next: next,
		cb:   cb,
		name: cbName,
	}
}

func isBreakerSuccess(err error) bool {
	return err == nil || IsNotFound(err) || errors.Is(err, context.Canceled)
}

// execute wraps a catalog call with circuit breaker protection.
// Rejections are returned as *UpstreamError wrapping gobreaker.ErrOpenState
// or gobreaker.ErrTooManyRequests.
func (cbc *CircuitBreakerClient) execute(op string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Str("op", op).Msg("[CIRCUIT BREAKER] RAWG request rejected")
			return nil, &UpstreamError{Op: op, Err: err}
		}
		if isBreakerSuccess(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		}
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// SearchGames runs a game search with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchGames(ctx context.Context, q Query) (*models.GameList, error) {
	result, err := cbc.execute(OpSearchGames, func() (interface{}, error) {
		return cbc.next.SearchGames(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	list, ok := result.(*models.GameList)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for SearchGames")
	}
	return list, nil
}

// GetGame fetches a game with circuit breaker protection
func (cbc *CircuitBreakerClient) GetGame(ctx context.Context, id int) (*models.Game, error) {
	result, err := cbc.execute(OpGetGame, func() (interface{}, error) {
		return cbc.next.GetGame(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	game, ok := result.(*models.Game)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for GetGame")
	}
	return game, nil
}

// GetGameRaw fetches a raw game body with circuit breaker protection
func (cbc *CircuitBreakerClient) GetGameRaw(ctx context.Context, id int) ([]byte, error) {
	result, err := cbc.execute(OpGetGame, func() (interface{}, error) {
		return cbc.next.GetGameRaw(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	body, ok := result.([]byte)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for GetGameRaw")
	}
	return body, nil
}

// ListGenres fetches the genre list with circuit breaker protection
func (cbc *CircuitBreakerClient) ListGenres(ctx context.Context) ([]models.Genre, error) {
	result, err := cbc.execute(OpListGenres, func() (interface{}, error) {
		return cbc.next.ListGenres(ctx)
	})
	if err != nil {
		return nil, err
	}
	genres, ok := result.([]models.Genre)
	if !ok {
		return nil, errors.New("circuit breaker: unexpected result type for ListGenres")
	}
	return genres, nil
}

// State returns the current circuit breaker state
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// StateString returns the current state as closed, half-open or open
func (cbc *CircuitBreakerClient) StateString() string {
	return stateToString(cbc.cb.State())
}

// Counts returns the current circuit breaker counts
func (cbc *CircuitBreakerClient) Counts() gobreaker.Counts {
	return cbc.cb.Counts()
}

// stateToString converts gobreaker.State to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts gobreaker.State to float64 for Prometheus metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
