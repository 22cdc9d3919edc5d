package scraper

import (
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sievelabs/assessrec/core"
)

var durationPattern = regexp.MustCompile(`(?i)Approximate Completion Time in minutes\s*=\s*(\d+)`)

// ParseCatalogPage extracts catalog rows from one page of the product table.
// Rows missing a product link or with too few cells are skipped. Relative
// product links are resolved against base.
func ParseCatalogPage(r io.Reader, base *url.URL) ([]*core.Assessment, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var assessments []*core.Assessment

	doc.Find("tr[data-entity-id]").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		link := cells.Eq(0).Find("a[href*='/product-catalog/view/']").First()
		href, exists := link.Attr("href")
		if !exists {
			return
		}

		productURL, err := url.Parse(href)
		if err != nil {
			return
		}
		if base != nil {
			productURL = base.ResolveReference(productURL)
		}

		var testTypes []string
		cells.Eq(3).Find("span.product-catalogue__key").Each(func(_ int, span *goquery.Selection) {
			code := strings.TrimSpace(span.Text())
			if code != "" {
				testTypes = append(testTypes, code)
			}
		})

		assessments = append(assessments, &core.Assessment{
			URL:             productURL.String(),
			Name:            strings.TrimSpace(link.Text()),
			RemoteSupport:   yesNoCell(cells.Eq(1)),
			AdaptiveSupport: yesNoCell(cells.Eq(2)),
			TestTypes:       testTypes,
		})
	})

	return assessments, nil
}

// yesNoCell reads the yes/no marker span of a feature cell.
// The marker is encoded in the span's class list, not its text.
func yesNoCell(cell *goquery.Selection) bool {
	span := cell.Find("span").First()
	if span.Length() == 0 {
		return false
	}
	class, _ := span.Attr("class")
	return strings.Contains(strings.ToLower(class), "yes")
}

// ParseDetailPage extracts the description paragraph and approximate
// duration from a product detail page. Either value may be absent:
// description comes back empty and duration zero.
//
// The description is the first paragraph over 80 characters that is not
// cookie/browser boilerplate, searched inside the product content container
// when one exists.
func ParseDetailPage(r io.Reader) (description string, duration int, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", 0, err
	}

	container := doc.Selection
	for _, class := range []string{"div.product-detail", "div.product-content", "div.product-main"} {
		if found := doc.Find(class).First(); found.Length() > 0 {
			container = found
			break
		}
	}

	container.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		lower := strings.ToLower(text)
		if len(text) > 80 && !strings.Contains(lower, "cookie") && !strings.Contains(lower, "browser") {
			description = text
			return false
		}
		return true
	})

	if match := durationPattern.FindStringSubmatch(container.Text()); match != nil {
		duration, _ = strconv.Atoi(match[1])
	}

	return description, duration, nil
}
