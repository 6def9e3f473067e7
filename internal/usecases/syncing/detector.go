package syncing

import (
	"slices"
	"time"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

// DetectionResult separa o lote recebido entre anúncios novos e alterados
type DetectionResult struct {
	New     []*domain.AdRecord
	Updated []*domain.AdRecord
}

type comparedField struct {
	Name  string
	Equal func(a, b *domain.AdRecord) bool
}

// comparedFields é a única lista de campos que caracterizam uma alteração.
// Campos fora dela (ids, nomes, urls, timestamps de escrita) não contam.
var comparedFields = []comparedField{
	{"is_active", func(a, b *domain.AdRecord) bool { return a.IsActive == b.IsActive }},
	{"delivery_stop_time", func(a, b *domain.AdRecord) bool { return timePtrEqual(a.DeliveryStopTime, b.DeliveryStopTime) }},
	{"creative_body", func(a, b *domain.AdRecord) bool { return a.CreativeBody == b.CreativeBody }},
	{"creative_link_title", func(a, b *domain.AdRecord) bool { return stringPtrEqual(a.CreativeLinkTitle, b.CreativeLinkTitle) }},
	{"creative_link_description", func(a, b *domain.AdRecord) bool {
		return stringPtrEqual(a.CreativeLinkDescription, b.CreativeLinkDescription)
	}},
	{"creative_link_caption", func(a, b *domain.AdRecord) bool { return stringPtrEqual(a.CreativeLinkCaption, b.CreativeLinkCaption) }},
	{"spend", func(a, b *domain.AdRecord) bool { return rangeEqual(a.Spend, b.Spend) }},
	{"impressions", func(a, b *domain.AdRecord) bool { return rangeEqual(a.Impressions, b.Impressions) }},
	{"demographic_breakdown", func(a, b *domain.AdRecord) bool {
		return sliceEqual(a.DemographicBreakdown, b.DemographicBreakdown)
	}},
	{"region_breakdown", func(a, b *domain.AdRecord) bool { return sliceEqual(a.RegionBreakdown, b.RegionBreakdown) }},
	{"funding_entity", func(a, b *domain.AdRecord) bool { return stringPtrEqual(a.FundingEntity, b.FundingEntity) }},
	{"byline", func(a, b *domain.AdRecord) bool { return stringPtrEqual(a.Byline, b.Byline) }},
	{"last_active_time", func(a, b *domain.AdRecord) bool { return stringPtrEqual(a.LastActiveTime, b.LastActiveTime) }},
}

// ChangedFields lista, na ordem da tabela, os campos comparados que diferem
func ChangedFields(existing, incoming *domain.AdRecord) []string {
	var changed []string
	for _, field := range comparedFields {
		if !field.Equal(existing, incoming) {
			changed = append(changed, field.Name)
		}
	}
	return changed
}

// Detect classifica cada registro recebido pela chave id. A saída mantém a
// ordem do lote recebido e nenhuma entrada é modificada.
func Detect(existing, incoming []*domain.AdRecord) DetectionResult {
	byID := indexByID(existing)
	result := DetectionResult{
		New:     make([]*domain.AdRecord, 0),
		Updated: make([]*domain.AdRecord, 0),
	}

	for _, record := range incoming {
		previous, found := byID[record.ID]
		switch {
		case !found:
			result.New = append(result.New, record)
		case len(ChangedFields(previous, record)) > 0:
			result.Updated = append(result.Updated, record)
		}
	}

	return result
}

// Deactivated devolve cópias dos anúncios ativos que sumiram do lote recebido,
// marcadas como inativas e com updated_at = now.
func Deactivated(existing, incoming []*domain.AdRecord, now time.Time) []*domain.AdRecord {
	seen := indexByID(incoming)
	out := make([]*domain.AdRecord, 0)

	for _, record := range existing {
		if !record.IsActive {
			continue
		}
		if _, ok := seen[record.ID]; ok {
			continue
		}

		copied := record.Clone()
		copied.IsActive = false
		copied.UpdatedAt = now
		out = append(out, copied)
	}

	return out
}

func indexByID(records []*domain.AdRecord) map[string]*domain.AdRecord {
	byID := make(map[string]*domain.AdRecord, len(records))
	// ids repetidos: vale o último
	for _, record := range records {
		byID[record.ID] = record
	}
	return byID
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func rangeEqual(a, b *domain.BoundRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// sliceEqual diferencia lista ausente de lista vazia
func sliceEqual[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.Equal(a, b)
}
