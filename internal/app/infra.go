package app

import (
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/config"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/logger"
	"github.com/AsistenteIABolsa/uniconnect-nuevo-front/internal/redis"
)

type Infra struct {
	Redis *redis.Client
}

func setupInfra(cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{Redis: redisClient}, nil
}
