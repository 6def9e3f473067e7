package domain

import "time"

// SyncStatus guarda o resultado da última sincronização concluída de uma página
type SyncStatus struct {
	PageID     string    `json:"page_id"`
	LastSynced time.Time `json:"last_synced"`
	TotalAds   int       `json:"total_ads"`
	LastAdID   string    `json:"last_ad_id,omitempty"`
	SyncToken  string    `json:"sync_token,omitempty"`
}
