package decision

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// TypeTest is the notification type Jellyseerr sends for connectivity tests
const TypeTest = "TEST_NOTIFICATION"

// Messages returned to the webhook caller
const (
	declineMsg      = "Movie is available on the following streaming services:"
	approveMsg      = "Movie is not available on any streaming services"
	lookupFailedMsg = "Streaming availability could not be determined"
)

// ProviderLookup fetches the raw flatrate provider names for a movie
type ProviderLookup interface {
	WatchProviders(ctx context.Context, tmdbID, region string) ([]string, error)
}

// StatusUpdater pushes a verdict back to the request manager
type StatusUpdater interface {
	UpdateRequestStatus(ctx context.Context, requestID, status string) error
}

// Notification is the portion of an inbound webhook payload the engine
// consumes
type Notification struct {
	Type      string
	TMDBID    string
	RequestID string
}

// Result is the structured outcome of one decision
type Result struct {
	// Test is set when the notification was a connectivity test and no
	// decision was made
	Test bool
	// Verdict is the automated accept/decline decision
	Verdict Verdict
	// Providers is the allow-list-filtered availability set that justified
	// a decline; empty on approve
	Providers []string
	// Message is a human-readable summary for the webhook response
	Message string
	// StatusUpdated reports whether the request manager accepted the
	// status update
	StatusUpdated bool
}

// Options configures an Engine
type Options struct {
	// Providers is the allow-list of streaming services that count as
	// "available". Names are compared case-sensitively against TMDB
	// provider names.
	Providers []string
	// Region is the watch-provider region code, e.g. "US"
	Region string
	// OnLookupFailure is the verdict applied when the provider lookup
	// fails: "approve" or "decline"
	OnLookupFailure string
	// Rule is an optional expression overriding the default verdict logic
	Rule string
}

// Engine decides whether a movie request should be approved or declined
// based on streaming availability. It holds no mutable state, so a single
// Engine is safe for concurrent use.
type Engine struct {
	lookup          ProviderLookup
	updater         StatusUpdater
	allowed         []string
	region          string
	onLookupFailure Verdict
	rule            *Rule
	logger          zerolog.Logger
}

// NewEngine creates a decision engine
func NewEngine(lookup ProviderLookup, updater StatusUpdater, opts Options, logger zerolog.Logger) (*Engine, error) {
	if lookup == nil {
		return nil, fmt.Errorf("provider lookup is required")
	}
	if updater == nil {
		return nil, fmt.Errorf("status updater is required")
	}
	if opts.Region == "" {
		return nil, fmt.Errorf("region is required")
	}

	onFailure, err := ParseVerdict(opts.OnLookupFailure)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup failure policy: %w", err)
	}

	engine := &Engine{
		lookup:          lookup,
		updater:         updater,
		allowed:         opts.Providers,
		region:          opts.Region,
		onLookupFailure: onFailure,
		logger:          logger,
	}

	if opts.Rule != "" {
		rule, err := CompileRule(opts.Rule)
		if err != nil {
			return nil, fmt.Errorf("invalid verdict rule: %w", err)
		}
		engine.rule = rule
	}

	return engine, nil
}

// Decide processes one notification: it looks up streaming availability,
// reaches a verdict, and pushes the matching status update to the request
// manager. Connectivity test notifications short-circuit without any
// outbound calls. A failed status update is reported in the result, not as
// an error.
func (e *Engine) Decide(ctx context.Context, n Notification) (*Result, error) {
	if n.Type == TypeTest {
		e.logger.Info().Msg("Received test notification")
		return &Result{Test: true, Message: "Test notification received."}, nil
	}

	if n.TMDBID == "" {
		return nil, ErrMissingIdentifier
	}
	if n.RequestID == "" {
		return nil, ErrMissingRequestID
	}

	result := e.evaluate(ctx, n)

	if err := e.updater.UpdateRequestStatus(ctx, n.RequestID, result.Verdict.String()); err != nil {
		e.logger.Error().
			Err(err).
			Str("request_id", n.RequestID).
			Str("verdict", result.Verdict.String()).
			Msg("Failed to update request status")
	} else {
		result.StatusUpdated = true
	}

	return result, nil
}

// evaluate reaches a verdict for the notification without side effects
// beyond the provider lookup
func (e *Engine) evaluate(ctx context.Context, n Notification) *Result {
	raw, err := e.lookup.WatchProviders(ctx, n.TMDBID, e.region)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("tmdb_id", n.TMDBID).
			Str("policy", e.onLookupFailure.String()).
			Msg("Provider lookup failed, applying configured policy")
		return &Result{
			Verdict: e.onLookupFailure,
			Message: fmt.Sprintf("%s; request %sd per policy.", lookupFailedMsg, e.onLookupFailure),
		}
	}

	available := e.filterAllowed(raw)

	verdict := VerdictApprove
	if len(available) > 0 {
		verdict = VerdictDecline
	}

	if e.rule != nil {
		approve, err := e.rule.Approve(RuleInput{
			TMDBID:    n.TMDBID,
			Providers: available,
			Available: len(available) > 0,
		})
		if err != nil {
			e.logger.Error().
				Err(err).
				Str("rule", e.rule.Expression()).
				Msg("Verdict rule evaluation failed, keeping default verdict")
		} else if approve {
			verdict = VerdictApprove
		} else {
			verdict = VerdictDecline
		}
	}

	e.logger.Info().
		Str("tmdb_id", n.TMDBID).
		Str("request_id", n.RequestID).
		Strs("providers", available).
		Str("verdict", verdict.String()).
		Msg("Reached availability verdict")

	result := &Result{Verdict: verdict, Message: approveMsg}
	if verdict == VerdictDecline {
		result.Providers = available
		if len(available) > 0 {
			result.Message = fmt.Sprintf("%s %s.", declineMsg, strings.Join(available, ", "))
		} else {
			result.Message = "Request declined by verdict rule."
		}
	}
	return result
}

// filterAllowed intersects the raw upstream provider names with the
// allow-list, preserving upstream order
func (e *Engine) filterAllowed(raw []string) []string {
	var filtered []string
	for _, name := range raw {
		if slices.Contains(e.allowed, name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}
