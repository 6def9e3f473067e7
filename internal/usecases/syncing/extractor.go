package syncing

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-library-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExtractionResult reúne os registros candidatos e os contadores de descarte
type ExtractionResult struct {
	Records         []domain.CandidateRecord
	Accepted        int
	SkippedEntries  int
	SkippedPayloads int
}

type adsEnvelope struct {
	Data *struct {
		Page *struct {
			Ads *struct {
				Edges []jsoniter.RawMessage `json:"edges"`
			} `json:"ads"`
		} `json:"page"`
	} `json:"data"`
}

type adsEdge struct {
	Node map[string]any `json:"node"`
}

// Extract percorre as respostas capturadas na ordem de chegada e devolve os nós
// de anúncio encontrados, parando ao atingir recordCap (recordCap <= 0 não limita).
func Extract(payloads []domain.RawPayload, recordCap int) ExtractionResult {
	result := ExtractionResult{Records: make([]domain.CandidateRecord, 0)}

	for _, payload := range payloads {
		if recordCap > 0 && result.Accepted >= recordCap {
			break
		}

		edges, ok := decodeEdges(payload.Body)
		if !ok {
			result.SkippedPayloads++
			continue
		}

		for _, raw := range edges {
			if recordCap > 0 && result.Accepted >= recordCap {
				break
			}

			var edge adsEdge
			if err := json.Unmarshal(raw, &edge); err != nil || len(edge.Node) == 0 {
				result.SkippedEntries++
				continue
			}

			result.Records = append(result.Records, domain.CandidateRecord(edge.Node))
			result.Accepted++
		}
	}

	return result
}

func decodeEdges(body []byte) ([]jsoniter.RawMessage, bool) {
	if len(body) == 0 {
		return nil, false
	}

	var envelope adsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	if envelope.Data == nil || envelope.Data.Page == nil || envelope.Data.Page.Ads == nil {
		return nil, false
	}

	return envelope.Data.Page.Ads.Edges, true
}
