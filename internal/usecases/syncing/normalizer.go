package syncing

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

const (
	UnknownPageID   = "unknown"
	UnknownPageName = "Unknown Page"
)

// Aliases aceitos para cada campo. A API oficial usa snake_case e a captura
// GraphQL da biblioteca usa camelCase.
var (
	idKeys           = []string{"id", "ad_archive_id", "adArchiveID", "adArchiveId"}
	pageIDKeys       = []string{"page_id", "pageID", "pageId"}
	pageNameKeys     = []string{"page_name", "pageName"}
	bodyKeys         = []string{"ad_creative_body", "creative_body", "body"}
	linkTitleKeys    = []string{"ad_creative_link_title", "creative_link_title", "title"}
	linkDescKeys     = []string{"ad_creative_link_description", "creative_link_description", "linkDescription"}
	linkCaptionKeys  = []string{"ad_creative_link_caption", "creative_link_caption", "caption"}
	snapshotURLKeys  = []string{"ad_snapshot_url", "snapshot_url", "snapshotURL"}
	snapshotImgKeys  = []string{"ad_snapshot_img_url", "snapshot_image_url", "snapshotImageURL"}
	startTimeKeys    = []string{"ad_delivery_start_time", "delivery_start_time", "startDate"}
	stopTimeKeys     = []string{"ad_delivery_stop_time", "delivery_stop_time", "endDate"}
	currencyKeys     = []string{"currency"}
	spendKeys        = []string{"spend"}
	impressionsKeys  = []string{"impressions"}
	demographicKeys  = []string{"demographic_data", "demographic_breakdown", "demographic_distribution", "demographicDistribution"}
	regionKeys       = []string{"region_data", "region_breakdown", "delivery_by_region", "deliveryByRegion"}
	isActiveKeys     = []string{"is_active", "isActive"}
	lastActiveKeys   = []string{"last_active_time", "lastActiveTime"}
	fundingKeys      = []string{"funding_entity", "fundingEntity"}
	bylineKeys       = []string{"byline"}
	ageBucketKeys    = []string{"age", "age_bucket", "age_range", "ageRange"}
	genderKeys       = []string{"gender"}
	regionNameKeys   = []string{"region", "name"}
	percentageKeys   = []string{"percentage", "percent"}
	lowerBoundKeys   = []string{"lower_bound", "lowerBound"}
	upperBoundKeys   = []string{"upper_bound", "upperBound"}
	dateTimeLayouts  = []string{time.RFC3339Nano, "2006-01-02T15:04:05-0700", "2006-01-02T15:04:05", time.DateOnly}
	unixMillisCutoff = float64(1e12)
)

// Normalizer converte registros candidatos em AdRecord aplicando os padrões de
// cada campo de forma independente.
type Normalizer struct {
	now func() time.Time
	seq atomic.Uint64
}

func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NormalizeBatch normaliza os candidatos preservando a ordem de entrada
func (n *Normalizer) NormalizeBatch(candidates []domain.CandidateRecord, fallbackPageID string) []*domain.AdRecord {
	records := make([]*domain.AdRecord, 0, len(candidates))
	for _, candidate := range candidates {
		records = append(records, n.Normalize(candidate, fallbackPageID))
	}
	return records
}

func (n *Normalizer) Normalize(candidate domain.CandidateRecord, fallbackPageID string) *domain.AdRecord {
	now := n.now().UTC()

	record := &domain.AdRecord{
		ID:                      stringField(candidate, idKeys),
		PageID:                  stringField(candidate, pageIDKeys),
		PageName:                stringField(candidate, pageNameKeys),
		CreativeBody:            stringField(candidate, bodyKeys),
		CreativeLinkTitle:       optionalString(candidate, linkTitleKeys),
		CreativeLinkDescription: optionalString(candidate, linkDescKeys),
		CreativeLinkCaption:     optionalString(candidate, linkCaptionKeys),
		SnapshotURL:             stringField(candidate, snapshotURLKeys),
		SnapshotImageURL:        stringField(candidate, snapshotImgKeys),
		Currency:                optionalString(candidate, currencyKeys),
		Spend:                   boundRange(candidate, spendKeys),
		Impressions:             boundRange(candidate, impressionsKeys),
		DemographicBreakdown:    demographics(candidate),
		RegionBreakdown:         regions(candidate),
		IsActive:                isActive(candidate),
		LastActiveTime:          optionalString(candidate, lastActiveKeys),
		FundingEntity:           optionalString(candidate, fundingKeys),
		Byline:                  optionalString(candidate, bylineKeys),
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if record.ID == "" {
		record.ID = fmt.Sprintf("temp_%d_%d", now.UnixMilli(), n.seq.Add(1)-1)
	}

	if record.PageID == "" {
		record.PageID = fallbackPageID
	}
	if record.PageID == "" {
		record.PageID = UnknownPageID
	}

	if record.PageName == "" {
		record.PageName = UnknownPageName
	}

	record.DeliveryStartTime = now
	if start, ok := timeField(candidate, startTimeKeys); ok {
		record.DeliveryStartTime = start
	}
	if stop, ok := timeField(candidate, stopTimeKeys); ok {
		record.DeliveryStopTime = &stop
	}

	return record
}

func lookup(candidate domain.CandidateRecord, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := candidate[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func toString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case jsoniter.Number:
		return value.String(), true
	default:
		return "", false
	}
}

func toFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case jsoniter.Number:
		f, err := value.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringField(candidate domain.CandidateRecord, keys []string) string {
	for _, key := range keys {
		v, ok := candidate[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := toString(v); ok && s != "" {
			return s
		}
	}
	return ""
}

func optionalString(candidate domain.CandidateRecord, keys []string) *string {
	v, ok := lookup(candidate, keys)
	if !ok {
		return nil
	}
	s, ok := toString(v)
	if !ok {
		return nil
	}
	return &s
}

func timeField(candidate domain.CandidateRecord, keys []string) (time.Time, bool) {
	v, ok := lookup(candidate, keys)
	if !ok {
		return time.Time{}, false
	}
	return parseTime(v)
}

func parseTime(v any) (time.Time, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
	}

	f, ok := toFloat(v)
	if !ok || f <= 0 {
		return time.Time{}, false
	}
	if f >= unixMillisCutoff {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}

func boundRange(candidate domain.CandidateRecord, keys []string) *domain.BoundRange {
	v, ok := lookup(candidate, keys)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	lower := stringField(m, lowerBoundKeys)
	upper := stringField(m, upperBoundKeys)
	if lower == "" && upper == "" {
		return nil
	}
	return &domain.BoundRange{LowerBound: lower, UpperBound: upper}
}

func entries(candidate domain.CandidateRecord, keys []string) []map[string]any {
	v, ok := lookup(candidate, keys)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func percentage(m map[string]any) float64 {
	v, ok := lookup(m, percentageKeys)
	if !ok {
		return 0
	}
	f, _ := toFloat(v)
	return f
}

func demographics(candidate domain.CandidateRecord) []domain.DemographicShare {
	shares := make([]domain.DemographicShare, 0)
	for _, m := range entries(candidate, demographicKeys) {
		shares = append(shares, domain.DemographicShare{
			AgeBucket:  stringField(m, ageBucketKeys),
			Gender:     stringField(m, genderKeys),
			Percentage: percentage(m),
		})
	}
	return shares
}

func regions(candidate domain.CandidateRecord) []domain.RegionShare {
	shares := make([]domain.RegionShare, 0)
	for _, m := range entries(candidate, regionKeys) {
		shares = append(shares, domain.RegionShare{
			Region:     stringField(m, regionNameKeys),
			Percentage: percentage(m),
		})
	}
	return shares
}

// isActive só é falso quando a origem informa explicitamente false
func isActive(candidate domain.CandidateRecord) bool {
	v, ok := lookup(candidate, isActiveKeys)
	if !ok {
		return true
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}
