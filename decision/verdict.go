package decision

import "fmt"

// Verdict is the automated accept/decline decision for a media request
type Verdict int

const (
	// VerdictApprove means the movie is not streamable and the request
	// should go through
	VerdictApprove Verdict = iota
	// VerdictDecline means the movie is already available on an
	// allow-listed streaming service
	VerdictDecline
)

// String returns the status token the request manager expects
func (v Verdict) String() string {
	if v == VerdictDecline {
		return "decline"
	}
	return "approve"
}

// ParseVerdict parses a configured verdict token
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "approve":
		return VerdictApprove, nil
	case "decline":
		return VerdictDecline, nil
	default:
		return VerdictApprove, fmt.Errorf("unknown verdict %q (must be 'approve' or 'decline')", s)
	}
}
