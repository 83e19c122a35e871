package submit

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// DiscoverFilings walks an HTML index page (a disclosure directory listing)
// and collects every linked PDF as a filing. Relative hrefs resolve against
// pageURL; the filing ID is the PDF file stem.
func DiscoverFilings(htmlContent, pageURL string) ([]Filing, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse index page: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page URL: %w", err)
	}

	var filings []Filing
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}

				resolved := resolvePDFLink(base, strings.TrimSpace(attr.Val))
				if resolved == "" || seen[resolved] {
					continue
				}
				seen[resolved] = true

				stem := strings.TrimSuffix(path.Base(resolved), path.Ext(resolved))
				filings = append(filings, Filing{
					FilingID: stem,
					PDFURL:   resolved,
					Name:     "Bulk Import",
					Office:   "Unknown",
				})
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return filings, nil
}

// resolvePDFLink resolves href against base and returns it only when it is
// an http(s) link to a PDF.
func resolvePDFLink(base *url.URL, href string) string {
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if !strings.EqualFold(path.Ext(resolved.Path), ".pdf") {
		return ""
	}

	return resolved.String()
}
