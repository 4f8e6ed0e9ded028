package jellyseerr

// Status tokens accepted by the request status endpoint
const (
	StatusApprove = "approve"
	StatusDecline = "decline"
)
