package catalogsrc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nadira/tripstylist/internal/domain/catalog"
)

const defaultTimeout = 5 * time.Second

// HTTPProvider fetches products from an external catalog service. The
// category is passed through as a server-side filter; search refinement
// happens locally since not every deployment supports it upstream.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider builds a provider for the given catalog base URL.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *HTTPProvider) Products(ctx context.Context, query catalog.Query) ([]catalog.Product, error) {
	endpoint := p.baseURL + "/products"
	if query.Category != "" {
		endpoint += "?category=" + url.QueryEscape(query.Category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("catalog request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}

	products, err := decodeProducts(body)
	if err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	// The upstream already filtered by category; apply the rest locally.
	return catalog.FilterLocal(products, catalog.Query{Search: query.Search}), nil
}

type wireProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	PriceUSD    struct {
		CurrencyCode string `json:"currencyCode"`
		Units        int64  `json:"units"`
		Nanos        int32  `json:"nanos"`
	} `json:"priceUsd"`
	Categories []string `json:"categories"`
}

// decodeProducts accepts both a bare product array and the wrapped
// {"products": [...]} shape older catalog deployments return.
func decodeProducts(body []byte) ([]catalog.Product, error) {
	trimmed := strings.TrimSpace(string(body))
	var wire []wireProduct
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(body, &wire); err != nil {
			return nil, err
		}
	} else {
		var wrapped struct {
			Products []wireProduct `json:"products"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, err
		}
		wire = wrapped.Products
	}

	out := make([]catalog.Product, 0, len(wire))
	for _, wp := range wire {
		out = append(out, catalog.Product{
			ID:          wp.ID,
			Name:        wp.Name,
			Description: wp.Description,
			Picture:     wp.Picture,
			Price: catalog.Price{
				CurrencyCode: wp.PriceUSD.CurrencyCode,
				Units:        wp.PriceUSD.Units,
				Nanos:        wp.PriceUSD.Nanos,
			},
			Categories: wp.Categories,
		})
	}
	return out, nil
}
