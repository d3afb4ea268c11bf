package social

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Profile is one social platform's discovered presence.
type Profile struct {
	URL   string `json:"url,omitempty"`
	Found bool   `json:"found"`
}

// Platforms lists every platform checked, in report order.
var Platforms = []string{
	"facebook", "instagram", "twitter", "tiktok",
	"youtube", "linkedin", "pinterest", "reddit",
}

var platformPatterns = map[string][]string{
	"facebook":  {"facebook.com/", "fb.com/"},
	"instagram": {"instagram.com/"},
	"twitter":   {"twitter.com/", "x.com/"},
	"tiktok":    {"tiktok.com/@"},
	"youtube":   {"youtube.com/", "youtu.be/"},
	"linkedin":  {"linkedin.com/"},
	"pinterest": {"pinterest.com/"},
	"reddit":    {"reddit.com/user/", "reddit.com/r/"},
}

// FindProfiles scans the homepage's anchors for links to known social
// platforms. The first matching href per platform wins; platforms with no
// link are reported with Found false.
func FindProfiles(doc *goquery.Document, domain string) map[string]Profile {
	profiles := make(map[string]Profile)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		for platform, patterns := range platformPatterns {
			if _, seen := profiles[platform]; seen {
				continue
			}
			if !matchesAny(href, patterns) {
				continue
			}
			profiles[platform] = Profile{
				URL:   resolveHref(href, domain),
				Found: true,
			}
		}
	})

	for _, platform := range Platforms {
		if _, ok := profiles[platform]; !ok {
			profiles[platform] = Profile{Found: false}
		}
	}
	return profiles
}

func matchesAny(href string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(href, pattern) {
			return true
		}
	}
	return false
}

func resolveHref(href, domain string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	base, err := url.Parse(fmt.Sprintf("https://%s", domain))
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
