// Package observe instruments validators with structured logging and
// Prometheus metrics without changing what they accept or produce.
package observe

// ursa is a zod inspired validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jdudmesh/ursa"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	// decodesTotal counts validate calls by validator name and outcome:
	// "ok", "invalid" for a *ursa.ValidationError, "error" for anything else.
	// Type mismatches are raised before validate runs and are not counted.
	decodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "ursa_decode_total",
		Help: "The total number of values validated, by outcome",
	}, []string{"validator", "outcome"})

	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "ursa_decode_duration_seconds",
		Help:    "Time spent validating a value",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
	}, []string{"validator"})
)

type options struct {
	logger *slog.Logger
}

type Option func(o *options)

// WithLogger sets the logger failures are reported to. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Wrap returns a validator that behaves exactly like v and records every
// validate call under name. Validation failures are logged at debug level,
// defects at error level.
func Wrap[O, I any](name string, v *ursa.Validator[O, I], opts ...Option) *ursa.Validator[O, I] {
	if v == nil || v.Err() != nil {
		return v
	}

	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger.With("validator", name)

	return ursa.Create(v.Narrow, func(in I) (O, error) {
		start := time.Now()
		out, err := v.Validate(in)
		decodeDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		outcome := Outcome(err)
		decodesTotal.WithLabelValues(name, outcome).Inc()

		switch outcome {
		case OutcomeInvalid:
			logger.Debug("value rejected", "error", err)
		case OutcomeError:
			logger.Error("validator failed", "error", err)
		}

		return out, err
	}).Expect(v.Expected()...)
}

// Outcome classifies a validate result for metrics.
func Outcome(err error) string {
	var ve *ursa.ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &ve):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
