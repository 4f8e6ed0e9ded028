// Package decision implements the availability decision engine.
//
// Given a movie request notification, the engine looks up which streaming
// services currently offer the movie, filters them against a configured
// allow-list, and reaches a verdict: approve when the movie is not
// streamable anywhere tracked, decline when it is. The matching status
// update is then pushed to the request manager.
//
// # Policy
//
// Two things about the verdict are configurable:
//
//   - OnLookupFailure decides what happens when the availability check
//     itself fails. There is no implicit fallback: deployments choose
//     "approve" (never block a request on an upstream outage) or "decline"
//     (never auto-approve without a completed check).
//   - Rule optionally replaces the default "available means decline" logic
//     with an expression, e.g. "len(providers) < 2" to tolerate titles only
//     streamable on a single service.
//
// # Side effects
//
// One Decide call performs at most one provider lookup and one status
// update. Nothing is retained between calls and idempotency is not
// guaranteed; the request manager is responsible for handling repeated
// status updates for the same request.
package decision
