package ownerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с OwnerService.
// Профили владельцев меняются редко, поэтому ответы кэшируются с TTL —
// отчёт за период не должен ходить в OwnerService на каждую строку.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	log        Logger
}

// NewClient создает новый экземпляр клиента OwnerService
func NewClient(baseURL string, timeout time.Duration, cacheTTL time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: gocache.New(cacheTTL, 2*cacheTTL),
		log:   log,
	}
}

// GetOwner получает профиль владельца по ID
func (c *Client) GetOwner(ctx context.Context, ownerID int64) (*Owner, error) {
	cacheKey := fmt.Sprintf("owner:%d", ownerID)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*Owner), nil
	}

	url := fmt.Sprintf("%s/internal/owners/%d", c.baseURL, ownerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid owner ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrOwnerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var owner Owner
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.cache.SetDefault(cacheKey, &owner)

	return &owner, nil
}

// GetOwnerWithGracefulDegradation получает профиль владельца с graceful degradation.
// При недоступности OwnerService возвращает ErrServiceDegraded — вызывающая
// сторона использует имя владельца, сохранённое в конфигурации комиссии.
func (c *Client) GetOwnerWithGracefulDegradation(ctx context.Context, ownerID int64) (*Owner, error) {
	owner, err := c.GetOwner(ctx, ownerID)
	if err != nil {
		// Критичная бизнес-ошибка пробрасывается дальше
		if err == ErrOwnerNotFound {
			c.log.Info("No owner found for owner_id=%d", ownerID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("OwnerService unavailable, applying graceful degradation for owner_id=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: owner_id=%d, error=%v", ErrServiceDegraded, ownerID, err)
	}

	return owner, nil
}
