package entity

type SyncStatus struct {
	Height       int64 `json:"height"`
	TargetHeight int64 `json:"target_height"`
	Synced       bool  `json:"synced"`
}
