package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"servi-search/internal/catalog"
	"servi-search/internal/domain/category"
	"servi-search/internal/search"
	"servi-search/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestServer(t *testing.T) (*Hub, string, func()) {
	t.Helper()

	c, err := search.NewCatalog("v1", []category.Entry{
		{Category: category.Category{ID: 1, Name: "Plomería"}, Synonyms: []string{"grifo"}},
		{Category: category.Category{ID: 2, Name: "Grifería"}},
		{Category: category.Category{ID: 3, Name: "Jardinería"}, Synonyms: []string{"poda"}},
	})
	require.NoError(t, err)

	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(hubDone)
	}()

	searcher := usecase.NewCategorySearchUsecase(catalog.NewStaticStore(c), zerolog.Nop())
	srv := httptest.NewServer(NewHandler(hub, searcher, 20*time.Millisecond, zerolog.Nop()))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	return hub, url, func() {
		cancel()
		<-hubDone
		srv.Close()
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, out any) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, b, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, out))
}

func TestLiveSearch_DebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	_, url, stop := newTestServer(t)
	defer stop()

	conn := dial(t, url)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(InboundMessage{Type: TypeSearch, Q: "gr", Seq: 1}))
	require.NoError(t, conn.WriteJSON(InboundMessage{Type: TypeSearch, Q: "grif", Seq: 2}))

	var got ResultsMessage
	readJSON(t, conn, &got)
	assert.Equal(t, TypeResults, got.Type)
	assert.Equal(t, int64(2), got.Seq)
	assert.Equal(t, "grif", got.Data.Query)
	require.Len(t, got.Data.Sections, 2)
	require.Len(t, got.Data.Sections[0].Items, 1)
	assert.Equal(t, "Grifería", got.Data.Sections[0].Items[0].CategoryName)
	require.Len(t, got.Data.Sections[1].Items, 1)
	assert.Equal(t, "grifo", got.Data.Sections[1].Items[0].MatchedKeyword)

	// Nothing else arrives for the superseded query.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestLiveSearch_UnknownType(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	_, url, stop := newTestServer(t)
	defer stop()

	conn := dial(t, url)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(InboundMessage{Type: "subscribe", Seq: 7}))

	var got ErrorMessage
	readJSON(t, conn, &got)
	assert.Equal(t, TypeError, got.Type)
	assert.Equal(t, int64(7), got.Seq)
}

func TestNotifyCatalogUpdated_Broadcasts(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hub, url, stop := newTestServer(t)
	defer stop()
	SetDefaultHub(hub)
	defer SetDefaultHub(nil)

	conn := dial(t, url)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	c, err := search.NewCatalog("v2", []category.Entry{{Category: category.Category{ID: 1, Name: "Plomería"}}})
	require.NoError(t, err)
	OnCatalogReload(c)

	var evt CatalogUpdatedEvent
	readJSON(t, conn, &evt)
	assert.Equal(t, TypeCatalogUpdated, evt.Type)
	assert.Equal(t, "v2", evt.Version)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hub, url, stop := newTestServer(t)

	conn := dial(t, url)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ClientCount())
}
