package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

// The legacy store API serves loosely-typed JSON: ids arrive as plain
// strings, numbers or `{"$oid"}` wrappers, and failures carry an
// `{"erro": "..."}` envelope. Everything is normalized at this boundary so
// the rest of the service only sees canonical values.

const defaultTimeout = 5 * time.Second

type Factory struct {
	baseURL string
	httpc   *http.Client
}

func NewFactory(baseURL string) *Factory {
	return &Factory{
		baseURL: strings.TrimRight(baseURL, "/"),
		// A hanging call would stall a poll tick indefinitely; bound every
		// request to the poll interval.
		httpc: &http.Client{Timeout: defaultTimeout},
	}
}

var _ interfaces.IStoreClientFactory = (*Factory)(nil)

func (f *Factory) WithToken(token string) interfaces.IStoreClient {
	return &Client{baseURL: f.baseURL, token: token, httpc: f.httpc}
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

var _ interfaces.IStoreClient = (*Client)(nil)

type errorEnvelope struct {
	Erro string `json:"erro"`
}

type createOrderWire struct {
	PedidoID any     `json:"pedidoId"`
	Total    float64 `json:"total"`
}

type orderItemWire struct {
	ProdutoID  any     `json:"produtoId"`
	Quantidade int     `json:"quantidade"`
	Preco      float64 `json:"preco"`
}

type orderWire struct {
	ID       any             `json:"_id"`
	Status   string          `json:"status"`
	Total    float64         `json:"total"`
	CriadoEm string          `json:"criadoEm"`
	Produtos []orderItemWire `json:"produtos"`
}

type cartWire struct {
	Produtos []cartItemWire `json:"produtos"`
}

type cartItemWire struct {
	ID          any     `json:"_id"`
	ProdutoID   any     `json:"produtoId"`
	Nome        string  `json:"nome"`
	Img         string  `json:"img"`
	Cor         string  `json:"cor"`
	Modelo      string  `json:"modelo"`
	Preco       float64 `json:"preco"`
	Quantidade  int     `json:"quantidade"`
	Altura      float64 `json:"altura"`
	Largura     float64 `json:"largura"`
	Comprimento float64 `json:"comprimento"`
	Peso        float64 `json:"peso"`
}

type userWire struct {
	ID    any    `json:"_id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CEP   string `json:"cep"`
}

// CreateOrder places the order from the server-side cart. The store
// empties the cart as a side effect of this call.
func (c *Client) CreateOrder(ctx context.Context) (entities.Order, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/pedidos/pedidos", nil)
	if err != nil {
		return entities.Order{}, err
	}

	var wire createOrderWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return entities.Order{}, fmt.Errorf("decode create order response: %w", err)
	}
	id := entities.NormalizeID(wire.PedidoID)
	if id == "" {
		return entities.Order{}, fmt.Errorf("create order response missing order id")
	}
	return entities.Order{ID: id, Total: wire.Total, Status: entities.OrderStatusPendente}, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.Order, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/pedidos/pedidos", nil)
	if err != nil {
		return nil, err
	}

	var wires []orderWire
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, fmt.Errorf("decode order list: %w", err)
	}

	orders := make([]entities.Order, 0, len(wires))
	for _, w := range wires {
		o := entities.Order{
			ID:     entities.NormalizeID(w.ID),
			Status: entities.OrderStatus(strings.ToLower(strings.TrimSpace(w.Status))),
			Total:  w.Total,
		}
		if w.CriadoEm != "" {
			if ts, err := parseTimestamp(w.CriadoEm); err != nil {
				log.Printf("[storeapi][client] unparseable criadoEm order_id=%s value=%q", o.ID, w.CriadoEm)
			} else {
				o.CreatedAt = ts
			}
		}
		for _, it := range w.Produtos {
			qty := it.Quantidade
			if qty <= 0 {
				qty = 1
			}
			o.Items = append(o.Items, entities.OrderItem{
				ProductID: entities.NormalizeID(it.ProdutoID),
				Quantity:  qty,
				UnitPrice: it.Preco,
			})
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) FetchCart(ctx context.Context) ([]entities.CartItem, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/carrinho/carrinho", nil)
	if err != nil {
		return nil, err
	}

	var wire cartWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	items := make([]entities.CartItem, 0, len(wire.Produtos))
	for _, p := range wire.Produtos {
		id := entities.NormalizeID(p.ID)
		if id == "" {
			id = entities.NormalizeID(p.ProdutoID)
		}
		qty := p.Quantidade
		if qty <= 0 {
			qty = 1
		}
		price := p.Preco
		if price < 0 {
			price = 0
		}
		items = append(items, entities.CartItem{
			ProductID: id,
			Quantity:  qty,
			UnitPrice: price,
			Product: entities.ProductSnapshot{
				Name:   p.Nome,
				Image:  p.Img,
				Color:  p.Cor,
				Model:  p.Modelo,
				Price:  p.Preco,
				Height: p.Altura,
				Width:  p.Largura,
				Length: p.Comprimento,
				Weight: p.Peso,
			},
		})
	}
	return items, nil
}

func (c *Client) DecrementItem(ctx context.Context, productID string) error {
	payload := map[string]string{"produtoId": productID}
	_, err := c.do(ctx, http.MethodDelete, "/api/carrinho/item", payload)
	return err
}

func (c *Client) GetUser(ctx context.Context) (entities.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/usuario/usuario", nil)
	if err != nil {
		return entities.User{}, err
	}

	var wire userWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return entities.User{}, fmt.Errorf("decode user: %w", err)
	}
	return entities.User{
		ID:    entities.NormalizeID(wire.ID),
		Name:  wire.Nome,
		Email: wire.Email,
		CEP:   wire.CEP,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("store api %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Erro != "" {
			return nil, fmt.Errorf("store api %s %s: %s", method, path, envelope.Erro)
		}
		return nil, fmt.Errorf("store api %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return body, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", raw)
}
