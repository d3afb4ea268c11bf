package social

import "testing"

func TestAnalyzeSignals_International(t *testing.T) {
	html := `<html><head>
		<link rel="alternate" hreflang="en-us" href="https://example.com/us/" />
		<link rel="alternate" hreflang="en-in" href="https://example.com/in/" />
		<meta http-equiv="Content-Language" content="en" />
	</head><body></body></html>`

	signals := AnalyzeSignals(docFromHTML(t, html))

	if len(signals.International.HreflangTags) != 2 {
		t.Fatalf("Expected 2 hreflang tags, got %d", len(signals.International.HreflangTags))
	}
	if signals.International.HreflangTags[0].Lang != "en-us" {
		t.Errorf("Unexpected first hreflang: %+v", signals.International.HreflangTags[0])
	}
	if signals.International.ContentLanguage != "en" {
		t.Errorf("Expected content language en, got %q", signals.International.ContentLanguage)
	}
	if !signals.International.HasIntlSignals {
		t.Error("Expected international signals flagged")
	}
}

func TestAnalyzeSignals_Local(t *testing.T) {
	html := `<html><body>
		<footer>Call us at +91-080-123-4567. Visit us at 12 MG Road, 3rd Floor.</footer>
		<iframe src="https://www.google.com/maps/embed?pb=abc"></iframe>
	</body></html>`

	signals := AnalyzeSignals(docFromHTML(t, html))

	if !signals.Local.PhoneFound {
		t.Error("Expected phone number detected")
	}
	if !signals.Local.AddressFound {
		t.Error("Expected address keywords detected")
	}
	if !signals.Local.MapEmbed {
		t.Error("Expected Google Maps embed detected")
	}
	if !signals.Local.HasLocalSignals {
		t.Error("Expected local signals flagged")
	}
}

func TestAnalyzeSignals_Empty(t *testing.T) {
	signals := AnalyzeSignals(docFromHTML(t, "<html><body><p>hello world</p></body></html>"))

	if signals.International.HasIntlSignals {
		t.Error("Expected no international signals")
	}
	if signals.Local.HasLocalSignals {
		t.Error("Expected no local signals")
	}
	if signals.International.HreflangTags == nil {
		t.Error("Expected non-nil hreflang slice for JSON output")
	}
}
