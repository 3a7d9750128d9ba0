package service

// Outcome is the closed result contract of every form use case. Together with
// the error return it expresses three cases the UI must distinguish:
//
//	OutcomeSynced,  err == nil  — done and confirmed by the server
//	OutcomePending, err == nil  — accepted locally, will sync later
//	err != nil                  — rejected outright (local storage failure)
//
// Transient network conditions never surface as errors on the write path:
// they degrade to OutcomePending plus a queued operation.
type Outcome int

const (
	// OutcomeSynced means the inline round-trip succeeded and the returned
	// entity carries its server id.
	OutcomeSynced Outcome = iota

	// OutcomePending means the entity is written locally and an operation is
	// queued (or the inline attempt failed and was queued for retry).
	OutcomePending
)

func (o Outcome) String() string {
	if o == OutcomeSynced {
		return "SYNCED"
	}
	return "PENDING_SYNC"
}
