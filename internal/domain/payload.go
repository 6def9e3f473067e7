package domain

import "time"

// RawPayload é uma resposta paginada bruta capturada da biblioteca de anúncios
type RawPayload struct {
	URL        string
	Body       []byte
	ReceivedAt time.Time
}

// CandidateRecord é um registro ainda não tipado extraído de um payload.
// Só deve circular entre o extrator e o normalizador.
type CandidateRecord map[string]any
