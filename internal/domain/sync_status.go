package domain

import "encoding/json"

// SyncState — фаза синхронизатора корзины.
// Жизненный цикл: Idle → Acquiring/Mutating/Reconciling → Idle,
// любая фаза может перейти в Failed; следующий успех возвращает Idle.
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncAcquiring
	SyncMutating
	SyncReconciling
	SyncFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncAcquiring:
		return "acquiring_identity"
	case SyncMutating:
		return "mutating"
	case SyncReconciling:
		return "reconciling"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON — в API отдаём состояние строкой, а не числом.
func (s SyncState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SyncStatus — транзиентный статус для слоя представления.
// Reason заполнен только в состоянии Failed.
type SyncStatus struct {
	State  SyncState `json:"state"`
	Reason string    `json:"reason,omitempty"`
}
