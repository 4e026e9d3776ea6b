package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// PrintRequestStatus is the lifecycle state of a print request. The ordinal
// values and wire names mirror the server's enum codec, which accepts both
// the number and the "StatusX" string form.
type PrintRequestStatus int

const (
	StatusPendingApproval PrintRequestStatus = iota
	StatusEnqueued
	StatusInProgress
	StatusDone
)

// StatusUnknown is the parked value for wire statuses this client does not
// recognise. A record holding it still renders, but offers no transitions.
const StatusUnknown PrintRequestStatus = -1

var statusNames = map[PrintRequestStatus]string{
	StatusPendingApproval: "StatusPendingApproval",
	StatusEnqueued:        "StatusEnqueued",
	StatusInProgress:      "StatusInProgress",
	StatusDone:            "StatusDone",
}

// validTransitions defines which statuses may be offered as the next value
// for each current status. Staying put is always a legal offer; Done is
// terminal. The server re-validates on submit and remains authoritative —
// this table only prunes what the client presents.
var validTransitions = map[PrintRequestStatus][]PrintRequestStatus{
	StatusPendingApproval: {StatusEnqueued, StatusPendingApproval},
	StatusEnqueued:        {StatusInProgress, StatusPendingApproval, StatusEnqueued},
	StatusInProgress:      {StatusDone, StatusEnqueued, StatusInProgress},
	StatusDone:            {StatusDone},
}

// ValidNext returns the ordered set of statuses legal to offer from s.
// An unrecognised status yields an empty set: the UI degrades to "no action
// available", never to an unconstrained choice.
func (s PrintRequestStatus) ValidNext() []PrintRequestStatus {
	return append([]PrintRequestStatus(nil), validTransitions[s]...)
}

// CanTransitionTo reports whether moving from s to next is a legal offer.
func (s PrintRequestStatus) CanTransitionTo(next PrintRequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the statuses this client knows.
func (s PrintRequestStatus) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// String returns the wire name, e.g. "StatusEnqueued".
func (s PrintRequestStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "StatusUnknown"
}

// Label returns the human form without the wire prefix, e.g. "Enqueued".
func (s PrintRequestStatus) Label() string {
	return strings.TrimPrefix(s.String(), "Status")
}

// ParseStatus resolves user or wire input to a status. It accepts the wire
// name, the bare label, and the ordinal, case-insensitively.
func ParseStatus(v string) (PrintRequestStatus, bool) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		s := PrintRequestStatus(n)
		if s.IsValid() {
			return s, true
		}
		return StatusUnknown, false
	}
	for s, name := range statusNames {
		if strings.EqualFold(v, name) || strings.EqualFold(v, strings.TrimPrefix(name, "Status")) {
			return s, true
		}
	}
	return StatusUnknown, false
}

// MarshalJSON emits the wire name.
func (s PrintRequestStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts both wire forms the server emits: the ordinal number
// and the quoted "StatusX" name. Values outside the known set decode to
// StatusUnknown without failing the surrounding document, so listings keep
// rendering when the server grows a new status.
func (s *PrintRequestStatus) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if v := PrintRequestStatus(n); v.IsValid() {
			*s = v
		} else {
			*s = StatusUnknown
		}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if v, ok := ParseStatus(str); ok {
		*s = v
	} else {
		*s = StatusUnknown
	}
	return nil
}

// PrintRequest is the client-side, read-only projection of a print request
// owned by the server.
type PrintRequest struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	FileLink  string             `json:"file_link"`
	Notes     string             `json:"notes"`
	SpoolID   *int               `json:"spool_id,omitempty"`
	Color     *string            `json:"color,omitempty"`
	Material  *string            `json:"material,omitempty"`
	Status    PrintRequestStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
