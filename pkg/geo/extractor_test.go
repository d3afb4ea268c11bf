package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestExtractJSONLD(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{"@type": "Organization", "name": "Paws Co"}</script>
		<script type="application/ld+json">not valid json</script>
		<script type="application/ld+json">{"@type": "Product"}</script>
		<script type="text/javascript">var x = 1;</script>
	</head></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse test HTML: %v", err)
	}

	schemas := ExtractJSONLD(doc)
	if len(schemas) != 2 {
		t.Fatalf("Expected 2 valid schemas (invalid skipped), got %d", len(schemas))
	}

	var first map[string]interface{}
	if err := json.Unmarshal(schemas[0], &first); err != nil {
		t.Fatalf("Schema not valid JSON: %v", err)
	}
	if first["@type"] != "Organization" {
		t.Errorf("Expected Organization schema first, got %v", first["@type"])
	}
}

func TestExtractJSONLD_Empty(t *testing.T) {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))

	schemas := ExtractJSONLD(doc)
	if schemas == nil {
		t.Fatal("Expected non-nil schema slice for JSON output")
	}
	if len(schemas) != 0 {
		t.Errorf("Expected no schemas, got %d", len(schemas))
	}
}

func TestAuditPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`<html><head><script type="application/ld+json">{"@type": "WebSite"}</script></head></html>`))
	}))
	defer server.Close()

	analyzer := NewAnalyzer()
	results := analyzer.AuditPages(context.Background(), map[string]string{
		"homepage": server.URL + "/",
		"product":  server.URL + "/missing",
	})

	home := results["homepage"]
	if home.Error != "" {
		t.Fatalf("Unexpected homepage error: %s", home.Error)
	}
	if len(home.Schemas) != 1 {
		t.Errorf("Expected 1 homepage schema, got %d", len(home.Schemas))
	}

	product := results["product"]
	if product.Error == "" {
		t.Error("Expected error recorded for 404 page")
	}
	if len(product.Schemas) != 0 {
		t.Errorf("Expected no schemas for failed page, got %d", len(product.Schemas))
	}
}
