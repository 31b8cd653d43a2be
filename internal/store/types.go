package store

import (
	"time"

	"github.com/weykon/agent-hand/internal/group"
)

// Status is the derived runtime classification of a session.
type Status string

const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusWaiting  Status = "waiting"
	StatusIdle     Status = "idle"
	StatusError    Status = "error"
)

// Instance is a persisted session record. Fields other than Status are
// mutated only by user action; Status is mutated only by the StateEngine.
type Instance struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	ProjectPath     string     `json:"project_path"`
	GroupPath       string     `json:"group_path"`
	ParentSessionID string     `json:"parent_session_id,omitempty"`
	Command         string     `json:"command,omitempty"`
	Label           string     `json:"label,omitempty"`
	LabelColor      string     `json:"label_color,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	LastAccessedAt  *time.Time `json:"last_accessed_at,omitempty"`
	LastRunningAt   *time.Time `json:"last_running_at,omitempty"`
	LastWaitingAt   *time.Time `json:"last_waiting_at,omitempty"`
}

// MuxName returns the multiplexer session name bound to this instance,
// per §4.3: name(id) = "agentdeck_rs_" + id.
func (in *Instance) MuxName() string {
	return MuxSessionPrefix + in.ID
}

// MuxSessionPrefix discriminates this tool's multiplexer sessions from
// anything else that might be running on the dedicated private socket.
const MuxSessionPrefix = "agentdeck_rs_"

// LabelColors enumerates the 7 recognized label colors (UI-facing only).
var LabelColors = []string{"red", "orange", "yellow", "green", "blue", "purple", "gray"}

// Catalog is the full per-profile persisted document.
type Catalog struct {
	Instances []*Instance     `json:"instances"`
	Groups    []*group.Data   `json:"groups"`
	UpdatedAt time.Time       `json:"updated_at"`
}
