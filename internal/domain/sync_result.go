package domain

// FullSyncResult é o resultado de uma sincronização completa (inicial)
type FullSyncResult struct {
	Success      bool   `json:"success"`
	TotalRecords int    `json:"total_records"`
	PageID       string `json:"page_id,omitempty"`
	Error        string `json:"error,omitempty"`
}

// IncrementalSyncResult é o resultado de uma sincronização incremental de uma página
type IncrementalSyncResult struct {
	Success          bool   `json:"success"`
	PageID           string `json:"page_id"`
	NewCount         int    `json:"new_count"`
	UpdatedCount     int    `json:"updated_count"`
	DeactivatedCount int    `json:"deactivated_count"`
	TotalRecords     int    `json:"total_records"`
	Error            string `json:"error,omitempty"`
}
