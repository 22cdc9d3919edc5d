package scraper

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogPageHTML = `
<html><body>
<table>
  <tr data-entity-id="101">
    <td><a href="/solutions/products/product-catalog/view/java-8-new/">Java 8 (New)</a></td>
    <td><span class="catalogue__circle -yes"></span></td>
    <td><span class="catalogue__circle -no"></span></td>
    <td>
      <span class="product-catalogue__key">K</span>
    </td>
  </tr>
  <tr data-entity-id="102">
    <td><a href="/solutions/products/product-catalog/view/opq32/">OPQ32</a></td>
    <td><span class="catalogue__circle -yes"></span></td>
    <td><span class="catalogue__circle -yes"></span></td>
    <td>
      <span class="product-catalogue__key">P</span>
      <span class="product-catalogue__key">C</span>
    </td>
  </tr>
  <tr data-entity-id="103">
    <td>No link here</td>
    <td></td>
    <td></td>
    <td></td>
  </tr>
  <tr>
    <td><a href="/solutions/products/product-catalog/view/ignored/">Not a catalog row</a></td>
  </tr>
</table>
</body></html>`

func TestParseCatalogPage(t *testing.T) {
	base, err := url.Parse("https://www.shl.com")
	require.NoError(t, err)

	assessments, err := ParseCatalogPage(strings.NewReader(catalogPageHTML), base)
	require.NoError(t, err)
	require.Len(t, assessments, 2)

	java := assessments[0]
	assert.Equal(t, "https://www.shl.com/solutions/products/product-catalog/view/java-8-new/", java.URL)
	assert.Equal(t, "Java 8 (New)", java.Name)
	assert.True(t, java.RemoteSupport)
	assert.False(t, java.AdaptiveSupport)
	assert.Equal(t, []string{"K"}, java.TestTypes)

	opq := assessments[1]
	assert.Equal(t, "OPQ32", opq.Name)
	assert.True(t, opq.AdaptiveSupport)
	assert.Equal(t, []string{"P", "C"}, opq.TestTypes)
}

func TestParseCatalogPage_Empty(t *testing.T) {
	base, _ := url.Parse("https://www.shl.com")

	assessments, err := ParseCatalogPage(strings.NewReader("<html><body></body></html>"), base)
	require.NoError(t, err)
	assert.Empty(t, assessments)
}

const detailPageHTML = `
<html><body>
<div class="product-detail">
  <p>We use cookies to improve your experience on this site, please accept them to continue browsing our full catalog of products.</p>
  <p>Short intro.</p>
  <p>Multi-choice test that measures the knowledge of Java 8 features, class functionality, exceptions and data structures in practice.</p>
  <p>Assessment length: Approximate Completion Time in minutes = 30</p>
</div>
</body></html>`

func TestParseDetailPage(t *testing.T) {
	description, duration, err := ParseDetailPage(strings.NewReader(detailPageHTML))
	require.NoError(t, err)

	assert.Equal(t, "Multi-choice test that measures the knowledge of Java 8 features, class functionality, exceptions and data structures in practice.", description)
	assert.Equal(t, 30, duration)
}

func TestParseDetailPage_MissingFields(t *testing.T) {
	html := `<html><body><div class="product-detail"><p>Too short.</p></div></body></html>`

	description, duration, err := ParseDetailPage(strings.NewReader(html))
	require.NoError(t, err)
	assert.Empty(t, description)
	assert.Zero(t, duration)
}

func TestParseDetailPage_SkipsCookieBoilerplate(t *testing.T) {
	html := `<html><body>
<p>This website stores cookies on your computer which are used to collect information about how you interact with our website and services.</p>
<p>A substantial product description paragraph that easily exceeds the eighty character minimum length requirement for selection.</p>
</body></html>`

	description, _, err := ParseDetailPage(strings.NewReader(html))
	require.NoError(t, err)
	assert.Contains(t, description, "substantial product description")
}
