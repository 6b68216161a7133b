package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ByLCY/quill/config"
)

type envKey struct{}

// localEnv 保存一次运行所需的配置与日志。
type localEnv struct {
	cfg   *config.Config
	log   *zap.Logger
	start time.Time
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{start: time.Now(), log: zap.NewNop()})
}
