package entity

// PurgeTargetType is one of the directories `orbit purge` can remove.
type PurgeTargetType int

const (
	PurgeTargetConfig PurgeTargetType = iota
	PurgeTargetData
	PurgeTargetState
)

// String returns the lowercase name used in logs and labels.
func (t PurgeTargetType) String() string {
	switch t {
	case PurgeTargetConfig:
		return "config"
	case PurgeTargetData:
		return "data"
	case PurgeTargetState:
		return "state"
	default:
		return "unknown"
	}
}

// PurgeTarget is an orbit directory with its on-disk state.
type PurgeTarget struct {
	Type        PurgeTargetType
	Path        string
	Description string
	Size        int64
	Exists      bool
}

// PurgeResult is the outcome for one target.
type PurgeResult struct {
	Target  PurgeTarget
	Success bool
	Error   error
}
