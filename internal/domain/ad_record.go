package domain

import (
	"time"
)

// AdRecord representa um anúncio canônico da biblioteca de anúncios, já normalizado
type AdRecord struct {
	ID                      string             `json:"id"`
	PageID                  string             `json:"page_id"`
	PageName                string             `json:"page_name"`
	CreativeBody            string             `json:"creative_body"`
	CreativeLinkTitle       *string            `json:"creative_link_title,omitempty"`
	CreativeLinkDescription *string            `json:"creative_link_description,omitempty"`
	CreativeLinkCaption     *string            `json:"creative_link_caption,omitempty"`
	SnapshotURL             string             `json:"snapshot_url"`
	SnapshotImageURL        string             `json:"snapshot_image_url"`
	DeliveryStartTime       time.Time          `json:"delivery_start_time"`
	DeliveryStopTime        *time.Time         `json:"delivery_stop_time,omitempty"`
	Currency                *string            `json:"currency,omitempty"`
	Spend                   *BoundRange        `json:"spend,omitempty"`
	Impressions             *BoundRange        `json:"impressions,omitempty"`
	DemographicBreakdown    []DemographicShare `json:"demographic_breakdown"`
	RegionBreakdown         []RegionShare      `json:"region_breakdown"`
	IsActive                bool               `json:"is_active"`
	LastActiveTime          *string            `json:"last_active_time,omitempty"`
	FundingEntity           *string            `json:"funding_entity,omitempty"`
	Byline                  *string            `json:"byline,omitempty"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`
	SyncedAt                *time.Time         `json:"_synced_at,omitempty"`
}

// BoundRange é um intervalo de valores numéricos codificados como string (ex.: gasto, impressões)
type BoundRange struct {
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
}

type DemographicShare struct {
	AgeBucket  string  `json:"age_bucket"`
	Gender     string  `json:"gender"`
	Percentage float64 `json:"percentage"`
}

type RegionShare struct {
	Region     string  `json:"region"`
	Percentage float64 `json:"percentage"`
}

// Clone retorna uma cópia profunda do registro
func (a *AdRecord) Clone() *AdRecord {
	if a == nil {
		return nil
	}

	c := *a
	c.CreativeLinkTitle = cloneString(a.CreativeLinkTitle)
	c.CreativeLinkDescription = cloneString(a.CreativeLinkDescription)
	c.CreativeLinkCaption = cloneString(a.CreativeLinkCaption)
	c.Currency = cloneString(a.Currency)
	c.LastActiveTime = cloneString(a.LastActiveTime)
	c.FundingEntity = cloneString(a.FundingEntity)
	c.Byline = cloneString(a.Byline)
	c.DeliveryStopTime = cloneTime(a.DeliveryStopTime)
	c.SyncedAt = cloneTime(a.SyncedAt)

	if a.Spend != nil {
		spend := *a.Spend
		c.Spend = &spend
	}
	if a.Impressions != nil {
		impressions := *a.Impressions
		c.Impressions = &impressions
	}
	if a.DemographicBreakdown != nil {
		c.DemographicBreakdown = append(make([]DemographicShare, 0, len(a.DemographicBreakdown)), a.DemographicBreakdown...)
	}
	if a.RegionBreakdown != nil {
		c.RegionBreakdown = append(make([]RegionShare, 0, len(a.RegionBreakdown)), a.RegionBreakdown...)
	}

	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
