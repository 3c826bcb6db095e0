package results

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"results_feed/internal/client"
	"results_feed/internal/model"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodySize Ограничение на размер тела ответа
const maxBodySize = 1 << 20

type resultsClient struct {
	endpoint string
	http     *http.Client
}

// NewResultsClient Клиент источника результатов. timeout ограничивает весь запрос целиком.
func NewResultsClient(endpoint string, timeout time.Duration) client.ResultsClient {
	return NewResultsClientWithHTTP(endpoint, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func NewResultsClientWithHTTP(endpoint string, httpClient *http.Client) client.ResultsClient {
	return &resultsClient{
		endpoint: endpoint,
		http:     httpClient,
	}
}

// Fetch Выполняет один GET и нормализует ответ.
// Любая сетевая ошибка или статус не 2xx - client.ErrFetch, ошибки разбора - client.ErrParse.
func (c *resultsClient) Fetch(ctx context.Context) ([]model.Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", client.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", client.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Дочитываем тело, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, fmt.Errorf("%w: source returned status %d", client.ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", client.ErrFetch, err)
	}

	return Parse(body)
}
