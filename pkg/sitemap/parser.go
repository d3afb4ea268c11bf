package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Entry is one URL from a sitemap, with the optional lastmod timestamp and
// the page type assigned during analysis.
type Entry struct {
	Loc     string `json:"url"`
	LastMod string `json:"lastmod,omitempty"`
	Type    string `json:"type,omitempty"`
}

type xmlURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemapRef struct {
	Loc string `xml:"loc"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	Sitemaps []xmlSitemapRef `xml:"sitemap"`
}

// parseDocument decodes sitemap XML. It returns page entries for a urlset
// document, or child sitemap locations for a sitemapindex document.
func parseDocument(data []byte) (entries []Entry, children []string, err error) {
	var index xmlSitemapIndex
	if err := decode(data, &index); err == nil && len(index.Sitemaps) > 0 {
		for _, ref := range index.Sitemaps {
			if ref.Loc != "" {
				children = append(children, strings.TrimSpace(ref.Loc))
			}
		}
		return nil, children, nil
	}

	var urlset xmlURLSet
	if err := decode(data, &urlset); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sitemap XML: %w", err)
	}

	for _, u := range urlset.URLs {
		if u.Loc == "" {
			continue
		}
		entries = append(entries, Entry{
			Loc:     strings.TrimSpace(u.Loc),
			LastMod: u.LastMod,
		})
	}
	return entries, nil, nil
}

func decode(data []byte, dest interface{}) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader
	return decoder.Decode(dest)
}

// charsetReader tolerates the legacy encodings that show up in real-world
// sitemap declarations.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "iso-8859-15", "latin9":
		return transform.NewReader(input, charmap.ISO8859_15.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "windows-1251", "cp1251":
		return transform.NewReader(input, charmap.Windows1251.NewDecoder()), nil
	default:
		return input, nil
	}
}
