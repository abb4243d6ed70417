//go:build wireinject
// +build wireinject

package main

import (
	"NoteShare/config"
	"NoteShare/dao"
	"NoteShare/dao/cache"
	"NoteShare/handler"
	"NoteShare/pkg/client"
	"NoteShare/pkg/database"
	"NoteShare/pkg/rocketmq"
	"NoteShare/pkg/server"
	"NoteShare/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		config.ProvideAppConfig,
		config.ProvideUploadConfig,
		config.ProvideStorageConfig,
		config.ProvideRocketMQConfig,

		database.NewDB,
		client.NewRedisClient,
		rocketmq.InitProducer,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Rating), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}
