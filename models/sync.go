package models

import "time"

// SyncStatus is the cached convenience state stored on every entity row.
// The authoritative pending state lives in the sync queue; this field only
// lets the UI render a badge without joining against the queue table.
type SyncStatus string

const (
	// StatusSynced means the entity has been accepted by the server and the
	// local row carries its server id.
	StatusSynced SyncStatus = "SYNCED"

	// StatusPendingCreate means the entity exists only locally and a CREATE
	// operation is (or is about to be) queued for it.
	StatusPendingCreate SyncStatus = "PENDING_CREATE"

	// StatusPendingUpdate means local edits have not reached the server yet.
	StatusPendingUpdate SyncStatus = "PENDING_UPDATE"

	// StatusSyncing means the engine is currently pushing this entity.
	StatusSyncing SyncStatus = "SYNCING"

	// StatusFailed means the last push attempt failed; the operation stays
	// queued and will be retried on a later drain pass.
	StatusFailed SyncStatus = "FAILED"
)

// EntityType identifies which repository a queued operation targets.
type EntityType string

const (
	EntityAlbum  EntityType = "ALBUM"
	EntityMemory EntityType = "MEMORY"
	EntityUser   EntityType = "USER"
)

// OperationType is the intent of a queued operation.
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
)

// OperationStatus is the lifecycle state of a queued operation. Operations
// are removed from the queue on success, so there is no terminal SUCCESS value.
type OperationStatus string

const (
	OperationPending    OperationStatus = "PENDING"
	OperationInProgress OperationStatus = "IN_PROGRESS"
	OperationFailed     OperationStatus = "FAILED"
)

// SyncOperation is the unit of deferred work: a pointer to an entity plus an
// intent. It never carries a payload snapshot — executors re-read the entity's
// current local state at execution time, so a queued operation can never push
// stale fields.
type SyncOperation struct {
	// ID is the operation's own identity, distinct from the entity's local id.
	ID string `json:"id"`

	// EntityType selects the executor family (album, memory, user).
	EntityType EntityType `json:"entity_type"`

	// OperationType selects CREATE or UPDATE within the family.
	OperationType OperationType `json:"operation_type"`

	// LocalID is the target entity's local id — the join key back to the
	// entity row.
	LocalID string `json:"local_id"`

	// CreatedAt orders the queue. Drain passes process PENDING and FAILED
	// operations oldest-first, so a failed operation is retried in place
	// rather than pushed to the back.
	CreatedAt time.Time `json:"created_at"`

	Status OperationStatus `json:"status"`

	// ErrorMessage holds the last failure reason for the diagnostics view.
	ErrorMessage *string `json:"error_message,omitempty"`
}

// QueueState is the aggregate published on every queue mutation.
type QueueState struct {
	PendingCount int  `json:"pending_count"`
	IsSyncing    bool `json:"is_syncing"`
}
