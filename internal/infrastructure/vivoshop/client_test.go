package vivoshop

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogwatch/backend/internal/domain"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 6, 100, 100)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("https://shop.example.com", 0, 0, 0)

	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 6, client.pageSize)
	assert.False(t, client.debug)
}

func TestFetchText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`<div class="goods-item"><h3>Vivo Y100</h3></div>`))
	}))
	defer server.Close()

	body := newTestClient(server.URL).FetchText(context.Background(), server.URL+"/id/products/phone")
	assert.Contains(t, body, "Vivo Y100")
}

func TestFetchText_ErrorsDegradeToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	assert.Empty(t, client.FetchText(context.Background(), server.URL), "non-200 degrades to empty")
	assert.Empty(t, client.FetchText(context.Background(), "http://127.0.0.1:1"), "unreachable host degrades to empty")
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/product/search", r.URL.Path)
		assert.Equal(t, "Vivo Y100", r.URL.Query().Get("keyword"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "6", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "ID", r.URL.Query().Get("country"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"data":{"total":1,"list":[` +
			`{"spuId":12345,"name":"Vivo Y100","salePrice":"4999000","originalPrice":6000000,` +
			`"canBuy":true,"skuList":[{"skuId":1,"stockStatus":1}]}]}}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Search(context.Background(), "Vivo Y100")
	require.NoError(t, err)
	require.Len(t, resp.Data.List, 1)

	best := resp.Data.List[0]
	assert.Equal(t, int64(12345), best.SpuID)

	// Prices arrive as strings or numbers; both decode.
	sale := domain.PriceValue(best.SalePrice)
	require.NotNil(t, sale)
	assert.Equal(t, int64(4999000), *sale)
	orig := domain.PriceValue(best.OriginalPrice)
	require.NotNil(t, orig)
	assert.Equal(t, int64(6000000), *orig)
}

func TestSearch_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Search(context.Background(), "anything")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrShopAPIFailure)
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Search(context.Background(), "anything")
	assert.Nil(t, resp)
	assert.Error(t, err)
}
