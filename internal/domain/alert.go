package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertSuccess AlertType = "success"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

// Alert is a transient notification. SubjectMarkerID is a weak
// back-reference used for "show me" navigation; it confers no ownership.
type Alert struct {
	ID              uuid.UUID     `json:"id"`
	Message         string        `json:"message"`
	Type            AlertType     `json:"type"`
	Duration        time.Duration `json:"-"`
	SubjectMarkerID *uuid.UUID    `json:"subject_marker_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// duration_ms is milliseconds on the wire; time.Duration would serialize
// as nanoseconds.
func (a Alert) MarshalJSON() ([]byte, error) {
	type alias Alert
	return json.Marshal(struct {
		alias
		DurationMs int64 `json:"duration_ms"`
	}{
		alias:      alias(a),
		DurationMs: a.Duration.Milliseconds(),
	})
}

func (a *Alert) UnmarshalJSON(data []byte) error {
	type alias Alert
	aux := struct {
		*alias
		DurationMs int64 `json:"duration_ms"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Duration = time.Duration(aux.DurationMs) * time.Millisecond
	return nil
}
