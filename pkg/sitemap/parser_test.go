package sitemap

import "testing"

func TestParseDocument_URLSet(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/blog/post-1</loc><lastmod>2025-08-01</lastmod></url>
  <url><loc>https://example.com/products/chews</loc></url>
  <url><loc></loc></url>
</urlset>`)

	entries, children, err := parseDocument(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if children != nil {
		t.Errorf("Expected no children for urlset, got %v", children)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries (empty loc skipped), got %d", len(entries))
	}
	if entries[0].Loc != "https://example.com/blog/post-1" || entries[0].LastMod != "2025-08-01" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
}

func TestParseDocument_Index(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/sitemap-posts.xml</loc></sitemap>
  <sitemap><loc>https://example.com/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`)

	entries, children, err := parseDocument(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries for index, got %v", entries)
	}
	if len(children) != 2 {
		t.Fatalf("Expected 2 child sitemaps, got %d", len(children))
	}
	if children[0] != "https://example.com/sitemap-posts.xml" {
		t.Errorf("Unexpected first child: %q", children[0])
	}
}

func TestParseDocument_LegacyEncoding(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/caf</loc></url>
</urlset>`)

	entries, _, err := parseDocument(data)
	if err != nil {
		t.Fatalf("Expected ISO-8859-1 declaration to parse, got %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
}

func TestParseDocument_Invalid(t *testing.T) {
	if _, _, err := parseDocument([]byte("not xml at all")); err == nil {
		t.Error("Expected error for invalid XML")
	}
}
