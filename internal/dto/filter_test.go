package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery[F any](t *testing.T, q string) F {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+q, nil)
	var f F
	require.NoError(t, binding.Query.Bind(req, &f))
	return f
}

// Every combination of present and absent optional product filters survives
// encoding into a query string and binding it back on the server side.
func TestProductFilter_QueryRoundTrip(t *testing.T) {
	categories := []int64{0, 3}
	searches := []string{"", "desk lamp", " desk lamp", "desk lamp ", "  "}
	stock := []*bool{nil, Ptr(true), Ptr(false)}
	pages := []*int{nil, Ptr(0), Ptr(2)}
	sizes := []*int{nil, Ptr(10)}

	for _, c := range categories {
		for _, s := range searches {
			for _, st := range stock {
				for _, p := range pages {
					for _, sz := range sizes {
						in := ProductFilter{CategoryID: c, Search: s, InStock: st, Page: p, Size: sz}
						out := parseQuery[ProductFilter](t, in.Query().Encode())
						assert.True(t, in.Equal(out), "%+v != %+v (%s)", in, out, in.Query().Encode())
					}
				}
			}
		}
	}
}

func TestOrderFilter_QueryRoundTrip(t *testing.T) {
	for _, status := range []string{"", "pending", FilterAll} {
		for _, search := range []string{"jane", " jane "} {
			for _, page := range []*int{nil, Ptr(1)} {
				for _, limit := range []*int{nil, Ptr(20)} {
					in := OrderFilter{Status: status, Search: search, Page: page, Limit: limit}
					out := parseQuery[OrderFilter](t, in.Query().Encode())
					assert.True(t, in.Equal(out), "%+v != %+v", in, out)
				}
			}
		}
	}
}

func TestUserFilter_QueryRoundTrip(t *testing.T) {
	for _, status := range []string{"", "blocked", "All"} {
		for _, search := range []string{"", "jane", "jane "} {
			in := UserFilter{Search: search, Status: status}
			out := parseQuery[UserFilter](t, in.Query().Encode())
			assert.True(t, in.Equal(out), "%+v != %+v", in, out)
		}
	}
}

// Filters that encode to the same query must compare equal, and filters that
// compare different must encode differently.
func TestFilterEquality_MatchesQuery(t *testing.T) {
	pairs := []struct {
		a, b  ProductFilter
		equal bool
	}{
		{ProductFilter{Search: "lamp"}, ProductFilter{Search: "lamp"}, true},
		{ProductFilter{Search: "lamp"}, ProductFilter{Search: " lamp"}, false},
		{ProductFilter{Search: ""}, ProductFilter{Search: "  "}, false},
	}
	for _, p := range pairs {
		sameQuery := p.a.Query().Encode() == p.b.Query().Encode()
		assert.Equal(t, p.equal, p.a.Equal(p.b), "%q vs %q", p.a.Search, p.b.Search)
		assert.Equal(t, p.equal, sameQuery, "%q vs %q", p.a.Search, p.b.Search)
	}

	assert.True(t, OrderFilter{Status: "ALL"}.Equal(OrderFilter{}))
	assert.True(t, UserFilter{Status: FilterAll}.Equal(UserFilter{}))
	assert.False(t, UserFilter{Status: "active"}.Equal(UserFilter{}))
}

func TestFilterAllIsOmitted(t *testing.T) {
	assert.Empty(t, OrderFilter{Status: FilterAll}.Query())
	assert.Empty(t, UserFilter{Status: "ALL"}.Query())
	assert.Equal(t, "status=blocked", UserFilter{Status: "blocked"}.Query().Encode())
	assert.Equal(t, "search=+lamp+", ProductFilter{Search: " lamp "}.Query().Encode())
}

func TestFilterEquality(t *testing.T) {
	a := ProductFilter{CategoryID: 3, Page: Ptr(1), Size: Ptr(10)}
	b := ProductFilter{CategoryID: 3, Page: Ptr(1), Size: Ptr(10)}
	assert.True(t, a.Equal(b), "equal values behind distinct pointers")
	assert.False(t, a.Equal(ProductFilter{CategoryID: 3, Page: Ptr(1)}))
	assert.False(t, a.Equal(ProductFilter{CategoryID: 3, Page: Ptr(2), Size: Ptr(10)}))

	assert.True(t, SalesFilter{}.Equal(SalesFilter{Days: DefaultSalesDays}))
	assert.Equal(t, "days=30", SalesFilter{Days: -1}.Query().Encode())
	assert.True(t, NoFilter{}.Equal(NoFilter{}))
}
