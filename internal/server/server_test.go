package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/config"
	designdomain "github.com/smallbiznis/billcanvas/internal/designtemplate/domain"
	designrepo "github.com/smallbiznis/billcanvas/internal/designtemplate/repository"
	designservice "github.com/smallbiznis/billcanvas/internal/designtemplate/service"
	"github.com/smallbiznis/billcanvas/internal/orgcontext"
	"github.com/smallbiznis/billcanvas/internal/preview"
	sampledomain "github.com/smallbiznis/billcanvas/internal/sampledata/domain"
	samplerepo "github.com/smallbiznis/billcanvas/internal/sampledata/repository"
	sampleservice "github.com/smallbiznis/billcanvas/internal/sampledata/service"
	templatedomain "github.com/smallbiznis/billcanvas/internal/template/domain"
)

type testServer struct {
	engine *gin.Engine
	orgID  snowflake.ID
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&designdomain.DesignTemplate{}, &sampledomain.SamplePayload{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	cfg := config.Config{ServiceName: "billcanvas-test", SampleCacheTTLSeconds: 30}

	designSvc := designservice.NewService(designservice.ServiceParam{
		DB: db, Log: zap.NewNop(), GenID: node,
	}, designrepo.Provide())
	sampleSvc := sampleservice.NewService(sampleservice.ServiceParam{
		Config: cfg, DB: db, Log: zap.NewNop(), GenID: node,
	}, samplerepo.Provide())

	srv := NewServer(Params{
		Config:    cfg,
		Log:       zap.NewNop(),
		DB:        db,
		Clock:     clock.SystemClock{},
		DesignSvc: designSvc,
		SampleSvc: sampleSvc,
		Renderer:  preview.NewRenderer(),
	})

	engine := gin.New()
	engine.GET("/healthz", srv.Health)
	srv.RegisterRoutes(engine)

	return &testServer{engine: engine, orgID: node.Generate()}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(orgcontext.Header, ts.orgID.String())

	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	ts := setupServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestTemplateCRUD(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/templates", gin.H{"name": "Retail Bill"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[designdomain.Response](t, rec)

	rec = ts.do(t, http.MethodGet, "/v1/templates/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodPut, "/v1/templates/"+created.ID, gin.H{"name": "Final"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body = %s", rec.Code, rec.Body.String())
	}
	updated := decodeJSON[designdomain.Response](t, rec)
	if updated.Name != "Final" {
		t.Fatalf("name = %q", updated.Name)
	}

	rec = ts.do(t, http.MethodPost, "/v1/templates/"+created.ID+"/default", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("set default status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodDelete, "/v1/templates/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/v1/templates/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d", rec.Code)
	}
}

func TestCreateTemplateValidation(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/templates", gin.H{"name": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank name status = %d", rec.Code)
	}
	rec = ts.do(t, http.MethodPost, "/v1/templates", gin.H{"name": "x", "document_type": "poster"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad document type status = %d", rec.Code)
	}
}

func TestMissingOrgHeader(t *testing.T) {
	ts := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unscoped request status = %d", rec.Code)
	}
}

func TestSampleDataRoundTrip(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPut, "/v1/sample-data/retail", gin.H{
		"header": gin.H{"companyName": "Acme"},
		"items": []gin.H{
			{"description": "Widget", "rate": 5},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d body = %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/v1/sample-data/retail", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "companyName") {
		t.Fatalf("payload missing header fields: %s", rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/v1/sample-data/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown sample status = %d", rec.Code)
	}
}

func TestValidateBindings(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPut, "/v1/sample-data/retail", gin.H{
		"header": gin.H{"companyName": "Acme"},
		"items":  []gin.H{{"rate": 5}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/v1/bindings/validate", gin.H{
		"sample_name": "retail",
		"paths":       []string{"header.companyName", "header.nope", ""},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("validate status = %d body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Results []struct {
			Path  string `json:"path"`
			Valid bool   `json:"valid"`
			Error string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	if !resp.Results[0].Valid || resp.Results[1].Valid || !resp.Results[2].Valid {
		t.Fatalf("validity flags wrong: %+v", resp.Results)
	}
	if !strings.Contains(resp.Results[1].Error, "companyName") {
		t.Fatalf("error should list available fields: %q", resp.Results[1].Error)
	}
}

func TestResolveDrop(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPost, "/v1/designer/drop", gin.H{
		"page": gin.H{"size": "A4", "orientation": "portrait"},
		"x":    100.0,
		"y":    120.0,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("drop status = %d body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Zone string  `json:"zone"`
		RelX float64 `json:"relX"`
		RelY float64 `json:"relY"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// TopMargin 40 + pageHeader 60 puts y=120 inside the header band.
	if resp.Zone != "header" {
		t.Fatalf("zone = %q, want header", resp.Zone)
	}
	if resp.RelX != 100 {
		t.Fatalf("relX = %v", resp.RelX)
	}
}

func TestPreviewTemplate(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(t, http.MethodPut, "/v1/sample-data/retail", gin.H{
		"header": gin.H{"companyName": "Acme"},
		"items": []gin.H{
			{"description": "Widget", "rate": 5},
			{"description": "Gadget", "rate": 7},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert sample: %d", rec.Code)
	}

	doc := templatedomain.New(templatedomain.Page{Size: templatedomain.PageA4, Orientation: templatedomain.Portrait})
	doc.Zones[templatedomain.ZoneHeader] = []templatedomain.Placement{
		templatedomain.FieldPlacement(templatedomain.Field{Bind: "header.companyName", X: 10, Y: 10}),
	}
	rec = ts.do(t, http.MethodPost, "/v1/templates", gin.H{"name": "Retail", "document": doc})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create template: %d body = %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[designdomain.Response](t, rec)

	rec = ts.do(t, http.MethodPost, "/v1/templates/"+created.ID+"/preview", gin.H{"sample_name": "retail"})
	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Acme") {
		t.Fatal("rendered preview missing resolved field")
	}
}
