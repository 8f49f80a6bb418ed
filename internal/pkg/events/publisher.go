// Package events publica eventos de domínio em Redis Streams.
package events

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	apperror "usersvc/internal/errors"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/result"
)

// StreamClient é o subconjunto do go-redis usado pelo publicador.
type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisPublisher grava cada evento como uma entrada {"data": <json>} no stream do tópico.
type RedisPublisher struct {
	client StreamClient
	logger logger.Logger
}

func NewRedisPublisher(client StreamClient, log logger.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, logger: log}
}

// Publish serializa payload e o adiciona ao stream topic.
// O valor de sucesso é o ID da mensagem atribuído pelo Redis.
func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) result.Result[string] {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Falha ao serializar evento.", err)
		return result.Err[string](apperror.NewInternalError("failed to encode event", err))
	}

	p.logger.Info("Publicando mensagem no tópico.", map[string]interface{}{"topic": topic})
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		p.logger.Error("Erro ao publicar mensagem.", err)
		return result.Err[string](apperror.NewInternalError("failed to publish event", err))
	}

	p.logger.Info("Mensagem publicada.", map[string]interface{}{"topic": topic, "message_id": id})
	return result.Ok(id)
}
