package syncing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return &Normalizer{now: func() time.Time { return fixedNow }}
}

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		candidate domain.CandidateRecord
		fallback  string
		validate  func(t *testing.T, record *domain.AdRecord)
	}{
		{
			name: "registro completo da API",
			candidate: domain.CandidateRecord{
				"id":                           "123",
				"page_id":                      "p1",
				"page_name":                    "Loja",
				"ad_creative_body":             "Compre agora",
				"ad_creative_link_title":       "Oferta",
				"ad_creative_link_description": "",
				"ad_snapshot_url":              "https://snap/123",
				"ad_delivery_start_time":       "2024-01-02T10:00:00+0000",
				"ad_delivery_stop_time":        "2024-02-01",
				"currency":                     "BRL",
				"spend":                        map[string]any{"lower_bound": "100", "upper_bound": "199"},
				"impressions":                  map[string]any{"lower_bound": float64(1000), "upper_bound": float64(1999)},
				"demographic_data": []any{
					map[string]any{"age": "18-24", "gender": "female", "percentage": 0.4},
					map[string]any{"age": "25-34", "gender": "male", "percentage": "0.6"},
				},
				"region_data": []any{map[string]any{"region": "São Paulo", "percentage": 1.0}},
				"is_active":   false,
				"byline":      "Pago por Loja",
			},
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Equal(t, "123", r.ID)
				assert.Equal(t, "p1", r.PageID)
				assert.Equal(t, "Loja", r.PageName)
				assert.Equal(t, "Compre agora", r.CreativeBody)
				require.NotNil(t, r.CreativeLinkTitle)
				assert.Equal(t, "Oferta", *r.CreativeLinkTitle)
				require.NotNil(t, r.CreativeLinkDescription)
				assert.Equal(t, "", *r.CreativeLinkDescription)
				assert.Nil(t, r.CreativeLinkCaption)
				assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), r.DeliveryStartTime)
				require.NotNil(t, r.DeliveryStopTime)
				assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *r.DeliveryStopTime)
				assert.Equal(t, &domain.BoundRange{LowerBound: "100", UpperBound: "199"}, r.Spend)
				assert.Equal(t, &domain.BoundRange{LowerBound: "1000", UpperBound: "1999"}, r.Impressions)
				assert.Equal(t, []domain.DemographicShare{
					{AgeBucket: "18-24", Gender: "female", Percentage: 0.4},
					{AgeBucket: "25-34", Gender: "male", Percentage: 0.6},
				}, r.DemographicBreakdown)
				assert.Equal(t, []domain.RegionShare{{Region: "São Paulo", Percentage: 1}}, r.RegionBreakdown)
				assert.False(t, r.IsActive)
				assert.Nil(t, r.FundingEntity)
				require.NotNil(t, r.Byline)
				assert.Equal(t, fixedNow, r.CreatedAt)
				assert.Equal(t, fixedNow, r.UpdatedAt)
				assert.Nil(t, r.SyncedAt)
			},
		},
		{
			name: "nomes camelCase da captura GraphQL",
			candidate: domain.CandidateRecord{
				"adArchiveID":   "987",
				"pageID":        "p9",
				"pageName":      "Marca",
				"isActive":      true,
				"startDate":     float64(1704067200),
				"endDate":       float64(1706745600000),
				"fundingEntity": "Marca SA",
			},
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Equal(t, "987", r.ID)
				assert.Equal(t, "p9", r.PageID)
				assert.Equal(t, "Marca", r.PageName)
				assert.True(t, r.IsActive)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.DeliveryStartTime)
				require.NotNil(t, r.DeliveryStopTime)
				assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *r.DeliveryStopTime)
				require.NotNil(t, r.FundingEntity)
				assert.Equal(t, "Marca SA", *r.FundingEntity)
			},
		},
		{
			name:      "candidato vazio recebe padrões",
			candidate: domain.CandidateRecord{},
			fallback:  "from-url",
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Regexp(t, fmt.Sprintf(`^temp_%d_\d+$`, fixedNow.UnixMilli()), r.ID)
				assert.Equal(t, "from-url", r.PageID)
				assert.Equal(t, UnknownPageName, r.PageName)
				assert.Equal(t, "", r.CreativeBody)
				assert.Equal(t, "", r.SnapshotURL)
				assert.Equal(t, "", r.SnapshotImageURL)
				assert.Equal(t, fixedNow, r.DeliveryStartTime)
				assert.Nil(t, r.DeliveryStopTime)
				assert.True(t, r.IsActive)
				assert.NotNil(t, r.DemographicBreakdown)
				assert.Empty(t, r.DemographicBreakdown)
				assert.NotNil(t, r.RegionBreakdown)
				assert.Empty(t, r.RegionBreakdown)
				assert.Nil(t, r.Spend)
			},
		},
		{
			name:      "sem page id nem fallback usa unknown",
			candidate: domain.CandidateRecord{"id": "1"},
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Equal(t, UnknownPageID, r.PageID)
			},
		},
		{
			name:      "id numérico vira texto",
			candidate: domain.CandidateRecord{"id": float64(120208123456789)},
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Equal(t, "120208123456789", r.ID)
			},
		},
		{
			name: "valores inválidos são ignorados campo a campo",
			candidate: domain.CandidateRecord{
				"id":                     "1",
				"ad_delivery_start_time": "ontem",
				"spend":                  "muito",
				"demographic_data":       "n/a",
				"is_active":              "false",
			},
			validate: func(t *testing.T, r *domain.AdRecord) {
				assert.Equal(t, "1", r.ID)
				assert.Equal(t, fixedNow, r.DeliveryStartTime)
				assert.Nil(t, r.Spend)
				assert.Empty(t, r.DemographicBreakdown)
				assert.True(t, r.IsActive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNormalizer()
			tt.validate(t, n.Normalize(tt.candidate, tt.fallback))
		})
	}
}

func TestNormalizer_PlaceholderIDsAreUnique(t *testing.T) {
	n := newTestNormalizer()

	records := n.NormalizeBatch([]domain.CandidateRecord{{}, {}, {}}, "p1")
	more := n.NormalizeBatch([]domain.CandidateRecord{{}}, "p1")

	seen := map[string]bool{}
	for _, r := range append(records, more...) {
		assert.False(t, seen[r.ID], "id repetido: %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestNormalizer_IsDeterministic(t *testing.T) {
	candidate := domain.CandidateRecord{"id": "1", "page_id": "p1", "ad_creative_body": "x"}

	a := newTestNormalizer().Normalize(candidate, "")
	b := newTestNormalizer().Normalize(candidate, "")

	assert.Equal(t, a, b)
}

func TestNormalizer_BatchKeepsOrder(t *testing.T) {
	n := newTestNormalizer()

	records := n.NormalizeBatch([]domain.CandidateRecord{{"id": "c"}, {"id": "a"}, {"id": "b"}}, "p1")

	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
	assert.Equal(t, "b", records[2].ID)
}
