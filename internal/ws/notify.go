package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"servi-search/internal/search"
)

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyCatalogUpdated tells every connected client that a new catalog
// version is live so it can re-run its current query.
func NotifyCatalogUpdated(version string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := CatalogUpdatedEvent{
		Type:      TypeCatalogUpdated,
		Version:   version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}

// OnCatalogReload adapts NotifyCatalogUpdated to catalog.Store.OnReload.
func OnCatalogReload(c *search.Catalog) {
	if c == nil {
		return
	}
	NotifyCatalogUpdated(c.Version())
}
