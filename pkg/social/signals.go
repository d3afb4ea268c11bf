package social

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HreflangTag is one alternate-language link from the homepage head.
type HreflangTag struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

// International holds hreflang and language-targeting signals.
type International struct {
	HreflangTags    []HreflangTag `json:"hreflang_tags"`
	ContentLanguage string        `json:"content_language,omitempty"`
	HasIntlSignals  bool          `json:"has_intl_signals"`
}

// Local holds NAP-style local SEO signals.
type Local struct {
	PhoneFound      bool `json:"phone_found"`
	AddressFound    bool `json:"address_found"`
	MapEmbed        bool `json:"map_embed"`
	HasLocalSignals bool `json:"has_local_signals"`
}

// Signals aggregates local and international SEO evidence for a homepage.
type Signals struct {
	International International `json:"international"`
	Local         Local         `json:"local"`
}

var (
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}`)
	mapsPattern  = regexp.MustCompile(`google\.com/maps`)
)

var addressKeywords = []string{
	"street", "road", "avenue", "lane", "floor",
	"building", "pincode", "zip code", "suite",
}

// AnalyzeSignals inspects a homepage document for local and international
// SEO markers. All checks are heuristic text and markup scans.
func AnalyzeSignals(doc *goquery.Document) Signals {
	var signals Signals
	signals.International.HreflangTags = []HreflangTag{}

	doc.Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, sel *goquery.Selection) {
		lang, _ := sel.Attr("hreflang")
		href, _ := sel.Attr("href")
		signals.International.HreflangTags = append(signals.International.HreflangTags, HreflangTag{
			Lang: lang,
			URL:  href,
		})
	})

	doc.Find(`meta[http-equiv]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if equiv, _ := sel.Attr("http-equiv"); !strings.EqualFold(equiv, "Content-Language") {
			return true
		}
		signals.International.ContentLanguage, _ = sel.Attr("content")
		return false
	})

	signals.International.HasIntlSignals = len(signals.International.HreflangTags) > 0 ||
		signals.International.ContentLanguage != ""

	text := strings.ToLower(doc.Text())

	signals.Local.PhoneFound = phonePattern.MatchString(text)
	for _, kw := range addressKeywords {
		if strings.Contains(text, kw) {
			signals.Local.AddressFound = true
			break
		}
	}

	doc.Find("iframe[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if mapsPattern.MatchString(src) {
			signals.Local.MapEmbed = true
			return false
		}
		return true
	})

	signals.Local.HasLocalSignals = signals.Local.PhoneFound ||
		signals.Local.AddressFound || signals.Local.MapEmbed

	return signals
}
