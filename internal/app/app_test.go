package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoterelay/internal/config"
	"quoterelay/internal/services"
	"quoterelay/internal/utils"
)

// fakeHubSpot serves the HubSpot endpoints the relay calls for deal 9001.
type fakeHubSpot struct {
	mu       sync.Mutex
	patches  []string
	noDeals  bool
	requests []string
}

func (f *fakeHubSpot) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/crm/v3/objects/deals/search":
		if f.noDeals {
			_, _ = io.WriteString(w, `{"total":0,"results":[]}`)
			return
		}
		_, _ = io.WriteString(w, `{"total":1,"results":[{"id":"9001","properties":{
			"hs_object_id":"9001","hubspot_owner_id":"77","job_number":"1024",
			"dealname":"Warehouse racking","deal_currency_code":"CAD","amount":"1500"}}]}`)
	case r.URL.Path == "/crm/v4/objects/deals/9001/associations/contacts":
		_, _ = io.WriteString(w, `{"results":[{"toObjectId":501,"associationTypes":[{"category":"HUBSPOT_DEFINED","typeId":1}]}]}`)
	case r.URL.Path == "/crm/v4/objects/deals/9001/associations/companies":
		_, _ = io.WriteString(w, `{"results":[{"toObjectId":601,"associationTypes":[{"category":"HUBSPOT_DEFINED","typeId":5}]}]}`)
	case r.URL.Path == "/crm/v3/objects/contacts/501":
		_, _ = io.WriteString(w, `{"id":"501","properties":{"firstname":"Jane","lastname":"Doe"}}`)
	case r.URL.Path == "/crm/v3/objects/companies/601":
		_, _ = io.WriteString(w, `{"id":"601","properties":{"name":"Acme Co"}}`)
	case r.Method == http.MethodPost && r.URL.Path == "/crm/v3/objects/users/search":
		_, _ = io.WriteString(w, `{"total":1,"results":[{"id":"u1","properties":{
			"hubspot_owner_id":"77","hs_given_name":"Sam","hs_family_name":"Rep",
			"hs_main_phone":"555-0100","hs_email":"sam@tresco.example"}}]}`)
	case r.Method == http.MethodPatch && r.URL.Path == "/crm/v3/objects/deals/9001":
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.patches = append(f.patches, string(body))
		f.mu.Unlock()
		_, _ = io.WriteString(w, `{"id":"9001","properties":{"amount":"20.00"}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":"error","message":"resource not found","category":"OBJECT_NOT_FOUND"}`)
	}
}

func newTestApp(t *testing.T, hub *fakeHubSpot) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	var cfg config.Config
	cfg.HubSpot.BaseURL = srv.URL
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	crm := utils.NewHubSpotClient("pat-test", cfg.HubSpot.BaseURL, 2*time.Second)
	router, err := NewRouter(&cfg, services.NewQuoteService(crm, nil, cfg.Quotes.EnrichConcurrency))
	require.NoError(t, err)
	return router
}

func TestQuoteLookup_EndToEnd(t *testing.T) {
	r := newTestApp(t, &fakeHubSpot{})

	req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-get?jobNumber=1024", nil)
	req.Header.Set("Origin", "http://192.168.1.50:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://192.168.1.50:3000", w.Header().Get("Access-Control-Allow-Origin"))

	var quotes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))
	require.Len(t, quotes, 1)
	q := quotes[0]
	assert.Equal(t, "1024", q["jobNumber"])
	assert.Equal(t, "9001", q["dealId"])
	assert.Equal(t, "Jane Doe", q["contact"])
	assert.Equal(t, "Acme Co", q["company"])
	assert.Equal(t, float64(501), q["contactId"])
	assert.Equal(t, float64(601), q["companyId"])
	assert.Equal(t, "Sam Rep", q["trescoRepName"])
	assert.Equal(t, "555-0100", q["trescoRepPhone"])
	assert.Equal(t, "sam@tresco.example", q["trescoRepEmail"])
}

func TestQuoteLookup_NoDeals(t *testing.T) {
	r := newTestApp(t, &fakeHubSpot{noDeals: true})

	req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-get?jobNumber=7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDealAmount_EndToEnd(t *testing.T) {
	hub := &fakeHubSpot{}
	r := newTestApp(t, hub)

	req := httptest.NewRequest(http.MethodPatch, "/hubspot-deal-amount",
		strings.NewReader(`{"dealObjNum":"9001","amount":19.995}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, hub.patches, 1)
	assert.JSONEq(t, `{"properties":{"amount":"20.00"}}`, hub.patches[0])
	assert.JSONEq(t, `{"success":true,"data":{"id":"9001","properties":{"amount":"20.00"}}}`, w.Body.String())
}

func TestDealAmount_UnknownDeal(t *testing.T) {
	r := newTestApp(t, &fakeHubSpot{})

	req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-amount?dealObjNum=123&amount=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch data from HubSpot"}`, w.Body.String())
}

func TestDisallowedOrigin_NeverReachesHubSpot(t *testing.T) {
	hub := &fakeHubSpot{}
	r := newTestApp(t, hub)

	req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-get?jobNumber=1024", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, hub.requests)
}

func TestSwaggerServed(t *testing.T) {
	r := newTestApp(t, &fakeHubSpot{})

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/hubspot-deal-get")
}

func TestNewOwnerCache(t *testing.T) {
	cache, closeFn := newOwnerCache(config.OwnerCacheConfig{Driver: config.CacheNone})
	assert.Nil(t, cache)
	closeFn()

	cache, closeFn = newOwnerCache(config.OwnerCacheConfig{Driver: config.CacheMemory, TTL: time.Minute})
	assert.NotNil(t, cache)
	closeFn()
}
