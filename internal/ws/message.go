package ws

import "servi-search/internal/delivery/http/dto"

const (
	TypeSearch         = "search"
	TypeResults        = "results"
	TypeError          = "error"
	TypeCatalogUpdated = "catalog_updated"
)

type InboundMessage struct {
	Type string `json:"type"`
	Q    string `json:"q"`
	Seq  int64  `json:"seq"`
}

type ResultsMessage struct {
	Type string                     `json:"type"`
	Seq  int64                      `json:"seq"`
	Data dto.CategorySearchResponse `json:"data"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Seq     int64  `json:"seq,omitempty"`
	Message string `json:"message"`
}

type CatalogUpdatedEvent struct {
	Type      string `json:"type"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
