package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/link-analytics-api/internal/config"
	"github.com/vfg2006/link-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCacheMiss indica que a chave não existe no cache
var ErrCacheMiss = errors.New("chave não encontrada no cache")

// ResponseCache guarda respostas de analytics já montadas, evitando refazer
// a reconciliação completa a cada requisição com os mesmos filtros
type ResponseCache interface {
	GetAnalyticsResponse(ctx context.Context, key string) (*domain.AnalyticsResponse, error)
	SetAnalyticsResponse(ctx context.Context, key string, response *domain.AnalyticsResponse) error
	Invalidate(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.Cache) (ResponseCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errors.Wrap(err, "URL do Redis inválida")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao conectar no Redis")
	}

	return &redisCache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

func (c *redisCache) GetAnalyticsResponse(ctx context.Context, key string) (*domain.AnalyticsResponse, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar resposta no cache")
	}

	response := &domain.AnalyticsResponse{}
	if err := json.Unmarshal(payload, response); err != nil {
		return nil, errors.Wrap(err, "erro ao desserializar resposta do cache")
	}

	return response, nil
}

func (c *redisCache) SetAnalyticsResponse(ctx context.Context, key string, response *domain.AnalyticsResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resposta para o cache")
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "erro ao gravar resposta no cache")
	}

	return nil
}

// Invalidate remove todas as chaves que casam com o padrão informado
func (c *redisCache) Invalidate(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "erro ao remover chave do cache")
		}
	}

	return errors.Wrap(iter.Err(), "erro ao varrer chaves do cache")
}
