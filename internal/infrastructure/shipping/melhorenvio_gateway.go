package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

// MelhorEnvioGateway queries the public MelhorEnvio rate calculator. The
// endpoint is loosely typed (prices arrive as strings or numbers) and may
// flag individual options with an error instead of failing the request.

const (
	defaultBaseURL   = "https://www.melhorenvio.com.br"
	defaultOriginZip = "18072-060"
	defaultTimeout   = 5 * time.Second
)

type MelhorEnvioGateway struct {
	baseURL   string
	originZip string
	httpc     *http.Client
}

var _ interfaces.IShippingGateway = (*MelhorEnvioGateway)(nil)

func NewMelhorEnvioGateway(baseURL, originZip string) *MelhorEnvioGateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if originZip == "" {
		originZip = defaultOriginZip
	}
	return &MelhorEnvioGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		originZip: originZip,
		httpc:     &http.Client{Timeout: defaultTimeout},
	}
}

type optionWire struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        any    `json:"price"`
	DeliveryTime any    `json:"delivery_time"`
	Company      struct {
		Name string `json:"name"`
	} `json:"company"`
	Error string `json:"error"`
}

func (g *MelhorEnvioGateway) Quote(ctx context.Context, destZip string, parcel entities.ParcelDimensions) ([]entities.ShippingOption, error) {
	query := url.Values{}
	query.Set("from", g.originZip)
	query.Set("to", destZip)
	query.Set("width", formatDimension(parcel.Width))
	query.Set("height", formatDimension(parcel.Height))
	query.Set("length", formatDimension(parcel.Length))
	query.Set("weight", formatDimension(parcel.Weight))
	query.Set("insurance_value", "0")

	endpoint := g.baseURL + "/api/v2/calculator?" + query.Encode()
	log.Printf("[shipping][gateway] quote start from=%s to=%s", g.originZip, destZip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shipping calculator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shipping calculator: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shipping calculator: unexpected status %d", resp.StatusCode)
	}

	var wires []optionWire
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, fmt.Errorf("shipping calculator: decode response: %w", err)
	}

	options := make([]entities.ShippingOption, 0, len(wires))
	for _, w := range wires {
		carrier := w.Company.Name
		if carrier == "" {
			carrier = w.Name
		}
		options = append(options, entities.ShippingOption{
			ID:           w.ID,
			Carrier:      carrier,
			Price:        coerceFloat(w.Price),
			DeliveryDays: coerceInt(w.DeliveryTime),
			Error:        w.Error,
		})
	}
	log.Printf("[shipping][gateway] quote success options=%d", len(options))
	return options, nil
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coerceFloat(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceInt(raw any) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	case map[string]any:
		// Some calculator responses nest the estimate as {"days": n}.
		if days, ok := v["days"]; ok {
			return coerceInt(days)
		}
		return 0
	default:
		return 0
	}
}
