package service

import (
	"NoteShare/dao"
	"NoteShare/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(INoteRepo), new(*dao.NoteDAO)),
	wire.Bind(new(IRatingRepo), new(*dao.RatingDAO)),
	wire.Bind(new(IStatsRepo), new(*dao.NoteStatsDAO)),
	wire.Bind(new(IDownloadCounter), new(*cache.DownloadStorage)),

	wire.Struct(new(RatingService), "*"),
	wire.Bind(new(IRatingService), new(*RatingService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(DownloadSync), "*"),

	NewStorageService,
	NewEventPublisher,
)
