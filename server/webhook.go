package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"jellygate/decision"
)

// Response status values
const (
	statusReceived = "received"
	statusAccepted = "accepted"
	statusRejected = "rejected"
	statusError    = "error"
)

// webhookPayload is the subset of the Jellyseerr notification payload the
// server consumes
type webhookPayload struct {
	NotificationType string `json:"notification_type"`
	Media            struct {
		TmdbID flexibleID `json:"tmdbId"`
	} `json:"media"`
	Request struct {
		RequestID flexibleID `json:"request_id"`
	} `json:"request"`
}

// flexibleID decodes a JSON string or number into a string. Jellyseerr
// webhook templates interpolate IDs as strings, but raw API payloads carry
// them as numbers; both are accepted. Any other JSON value decodes to the
// empty string, which the engine treats as a missing identifier.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	*f = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
	case '{', '[', 'n', 't', 'f':
		// Objects, arrays, null and booleans carry no usable ID
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = flexibleID(n.String())
	}
	return nil
}

// webhookResponse is the JSON body returned for every decision
type webhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	notification := decision.Notification{
		Type:      payload.NotificationType,
		TMDBID:    string(payload.Media.TmdbID),
		RequestID: string(payload.Request.RequestID),
	}

	s.logger.Debug().
		Str("notification_type", notification.Type).
		Str("tmdb_id", notification.TMDBID).
		Str("request_id", notification.RequestID).
		Msg("Received webhook notification")

	result, err := s.engine.Decide(r.Context(), notification)
	if err != nil {
		switch {
		case errors.Is(err, decision.ErrMissingIdentifier), errors.Is(err, decision.ErrMissingRequestID):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error().Err(err).Msg("Webhook decision failed")
			writeJSON(w, http.StatusInternalServerError, webhookResponse{
				Status:  statusError,
				Message: "internal error",
			})
		}
		return
	}

	status := statusReceived
	if !result.Test {
		status = statusAccepted
		if result.Verdict == decision.VerdictDecline {
			status = statusRejected
		}
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Status:  status,
		Message: result.Message,
	})
}
