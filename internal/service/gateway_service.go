package service

import (
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/redis"
	"context"
)

// FlagStore 一次性提交标记的持久化存储，注入以便测试替换
type FlagStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

type GatewayService interface {
	CanSubmit(ctx context.Context, clientID string) (bool, error)
	MarkSubmitted(ctx context.Context, clientID string) error
}

type gatewayServiceImpl struct {
	flags FlagStore
}

func NewGatewayService(flags FlagStore) GatewayService {
	return &gatewayServiceImpl{flags: flags}
}

// CanSubmit 仅当标记值恰为哨兵 "true" 时拒绝，其余值或缺失均放行
func (s *gatewayServiceImpl) CanSubmit(ctx context.Context, clientID string) (bool, error) {
	value, err := s.flags.Get(ctx, consts.SubmittedFlagKey+clientID)
	if err != nil {
		return false, err
	}
	return value != consts.SubmittedFlagValue, nil
}

func (s *gatewayServiceImpl) MarkSubmitted(ctx context.Context, clientID string) error {
	return s.flags.Set(ctx, consts.SubmittedFlagKey+clientID, consts.SubmittedFlagValue)
}

// RedisFlagStore 基于 Redis 的标记存储
type RedisFlagStore struct{}

func NewRedisFlagStore() *RedisFlagStore {
	return &RedisFlagStore{}
}

func (s *RedisFlagStore) Get(ctx context.Context, key string) (string, error) {
	return redis.GetValue(ctx, key)
}

func (s *RedisFlagStore) Set(ctx context.Context, key string, value string) error {
	return redis.SetValue(ctx, key, value)
}
