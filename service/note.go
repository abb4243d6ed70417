package service

import (
	"NoteShare/config"
	"NoteShare/dao"
	"NoteShare/models"
	"NoteShare/pkg/log"
	"NoteShare/pkg/snowflake"
	"NoteShare/types"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const anonymousNamespace = "anonymous"

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	UploadNote(ctx context.Context, in *UploadNoteInput) (*types.NoteItem, error)
	DeleteNote(ctx context.Context, noteID, userID uint64) error
	ListNotes(ctx context.Context, req types.ListNotesRequest, viewerID uint64) (*types.ListNotesRep, error)
	GetUserNotes(ctx context.Context, uploaderID uint64, req types.ListNotesRequest, viewerID uint64) (*types.ListNotesRep, error)
	GetNote(ctx context.Context, noteID, viewerID uint64) (*types.NoteItem, error)
	RecordDownload(ctx context.Context, noteID uint64) (string, error)
}

// UploadNoteInput 上传参数，Body 只读一次
type UploadNoteInput struct {
	Title       string
	Description string
	FileName    string
	FileType    string
	Size        int64
	Body        io.Reader
	UploaderID  uint64 // 0 表示匿名上传
}

type NoteService struct {
	NoteDAO   INoteRepo
	RatingDAO IRatingRepo
	StatsDAO  IStatsRepo
	Downloads IDownloadCounter
	Storage   IStorageService
	Events    IEventPublisher
	App       *config.App
	Upload    *config.Upload
	Store     *config.StorageConfig
}

// UploadNote 先存文件再写记录，写记录失败时删除刚上传的文件
func (s *NoteService) UploadNote(ctx context.Context, in *UploadNoteInput) (*types.NoteItem, error) {
	if in.UploaderID == 0 && !s.App.AnonymousUpload {
		return nil, ErrAuthRequired
	}
	if err := s.validateUpload(in); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	fileName := baseName(in.FileName)
	namespace := anonymousNamespace
	if in.UploaderID != 0 {
		namespace = strconv.FormatUint(in.UploaderID, 10)
	}
	objectKey := fmt.Sprintf("%s/%d_%s", namespace, time.Now().UnixMilli(), fileName)

	fileType := in.FileType
	if fileType == "" {
		fileType = "unknown"
	}

	// 1. 上传文件
	if err := s.Storage.Put(ctx, objectKey, in.Body, in.Size, fileType); err != nil {
		return nil, storeErr("upload file", err)
	}

	// 2. 写笔记记录
	now := time.Now()
	note := &models.Note{
		ID:        snowflake.GenID(),
		Title:     title,
		FilePath:  objectKey,
		FileURL:   s.Storage.PublicURL(objectKey),
		FileName:  fileName,
		FileType:  fileType,
		FileSize:  FormatFileSize(in.Size),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		note.Description = &desc
	}
	if in.UploaderID != 0 {
		uploader := in.UploaderID
		note.UploaderID = &uploader
	}

	if err := s.NoteDAO.Create(ctx, note); err != nil {
		// 回滚已上传的文件，删除失败只记日志
		if delErr := s.Storage.Delete(ctx, objectKey); delErr != nil {
			log.L.Error("cleanup uploaded file failed",
				zap.String("objectKey", objectKey), zap.Error(delErr))
		}
		return nil, storeErr("create note", err)
	}

	log.L.Info("note uploaded",
		zap.Uint64("noteId", note.ID),
		zap.String("objectKey", objectKey),
		zap.Int64("size", in.Size))
	publish(ctx, s.Events, NoteEvent{Type: EventNoteUploaded, NoteID: note.ID, UserID: in.UploaderID})

	return toNoteItem(note, nil, 0), nil
}

func (s *NoteService) validateUpload(in *UploadNoteInput) error {
	titleLen := utf8.RuneCountInString(strings.TrimSpace(in.Title))
	if titleLen < s.Upload.TitleMinLen {
		return &ValidationError{Field: "title", Msg: fmt.Sprintf("must be at least %d characters", s.Upload.TitleMinLen)}
	}
	if titleLen > s.Upload.TitleMaxLen {
		return &ValidationError{Field: "title", Msg: fmt.Sprintf("must be at most %d characters", s.Upload.TitleMaxLen)}
	}
	if in.Body == nil || strings.TrimSpace(in.FileName) == "" {
		return &ValidationError{Field: "file", Msg: "please select a file"}
	}
	switch baseName(in.FileName) {
	case "/", ".", "..":
		return &ValidationError{Field: "file", Msg: "invalid file name"}
	}
	if in.Size < 0 || in.Size > s.Upload.MaxSize {
		return &ValidationError{Field: "file", Msg: fmt.Sprintf("size must be less than %s", FormatFileSize(s.Upload.MaxSize))}
	}
	return nil
}

// baseName 去掉客户端带上的目录部分，兼容 windows 路径
func baseName(name string) string {
	return path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
}

// DeleteNote 先删文件再删记录
// 文件删除失败时记录保持不变；文件已删而记录删除失败时，记录会指向不存在的文件，错误返回给调用方
func (s *NoteService) DeleteNote(ctx context.Context, noteID, userID uint64) error {
	if userID == 0 {
		return ErrAuthRequired
	}
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return storeErr("find note", err)
	}
	if note == nil {
		return ErrNoteNotFound
	}
	if !note.OwnedBy(userID) {
		return ErrForbidden
	}
	if note.FilePath == "" {
		return storeErr("resolve file path", ErrUnresolvablePath)
	}

	// 1. 删除存储中的文件
	if err := s.Storage.Delete(ctx, note.FilePath); err != nil {
		return storeErr("delete file", err)
	}

	// 2. 删除记录（连同评分、统计）
	if err := s.NoteDAO.DeleteWithRelations(ctx, noteID); err != nil {
		log.L.Error("note record delete failed after file removal",
			zap.Uint64("noteId", noteID),
			zap.String("objectKey", note.FilePath),
			zap.Error(err))
		return storeErr("delete note", err)
	}

	// 3. 丢弃 redis 中未回写的下载数，避免回写时重新生成 note_stats
	if err := s.Downloads.Forget(ctx, noteID); err != nil {
		log.L.Warn("forget pending downloads failed", zap.Uint64("noteId", noteID), zap.Error(err))
	}

	publish(ctx, s.Events, NoteEvent{Type: EventNoteDeleted, NoteID: noteID, UserID: userID})
	return nil
}

// ListNotes 全部笔记，按标题搜索
func (s *NoteService) ListNotes(ctx context.Context, req types.ListNotesRequest, viewerID uint64) (*types.ListNotesRep, error) {
	req.Normalize()
	return s.list(ctx, dao.NoteQuery{Title: strings.TrimSpace(req.Query)}, req, viewerID)
}

// GetUserNotes 某个用户上传的笔记
func (s *NoteService) GetUserNotes(ctx context.Context, uploaderID uint64, req types.ListNotesRequest, viewerID uint64) (*types.ListNotesRep, error) {
	req.Normalize()
	return s.list(ctx, dao.NoteQuery{UploaderID: &uploaderID}, req, viewerID)
}

func (s *NoteService) list(ctx context.Context, q dao.NoteQuery, req types.ListNotesRequest, viewerID uint64) (*types.ListNotesRep, error) {
	q.Limit = req.PageSize
	q.Offset = (req.Page - 1) * req.PageSize

	notes, total, err := s.NoteDAO.List(ctx, q)
	if err != nil {
		return nil, storeErr("list notes", err)
	}
	items, err := s.enrich(ctx, notes, viewerID)
	if err != nil {
		return nil, err
	}
	return &types.ListNotesRep{
		Notes:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// GetNote 笔记详情，下载数包含尚未回写的部分
func (s *NoteService) GetNote(ctx context.Context, noteID, viewerID uint64) (*types.NoteItem, error) {
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return nil, storeErr("find note", err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	items, err := s.enrich(ctx, []*models.Note{note}, viewerID)
	if err != nil {
		return nil, err
	}
	item := items[0]

	pending, err := s.Downloads.Pending(ctx, noteID)
	if err != nil {
		log.L.Warn("read pending downloads failed", zap.Uint64("noteId", noteID), zap.Error(err))
	} else {
		item.DownloadCount += pending
	}
	return item, nil
}

// enrich 批量补齐评分聚合、下载数和当前用户的评分
func (s *NoteService) enrich(ctx context.Context, notes []*models.Note, viewerID uint64) ([]*types.NoteItem, error) {
	items := make([]*types.NoteItem, 0, len(notes))
	if len(notes) == 0 {
		return items, nil
	}
	ids := make([]uint64, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}

	ratings, err := s.RatingDAO.ValuesByNoteIDs(ctx, ids)
	if err != nil {
		return nil, storeErr("load ratings", err)
	}
	downloads, err := s.StatsDAO.DownloadCounts(ctx, ids)
	if err != nil {
		return nil, storeErr("load note stats", err)
	}
	mine, err := s.RatingDAO.UserValues(ctx, viewerID, ids)
	if err != nil {
		return nil, storeErr("load user ratings", err)
	}

	for _, n := range notes {
		agg := ComputeAggregate(ratings[n.ID])
		item := toNoteItem(n, &agg, downloads[n.ID])
		if v, ok := mine[n.ID]; ok {
			v := v
			item.UserRating = &v
		}
		items = append(items, item)
	}
	return items, nil
}

// RecordDownload 计数并返回下载地址，计数失败不阻塞下载
func (s *NoteService) RecordDownload(ctx context.Context, noteID uint64) (string, error) {
	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		return "", storeErr("find note", err)
	}
	if note == nil {
		return "", ErrNoteNotFound
	}

	if err := s.Downloads.Incr(ctx, noteID); err != nil {
		log.L.Warn("incr download count failed", zap.Uint64("noteId", noteID), zap.Error(err))
	}

	if note.FilePath == "" {
		return note.FileURL, nil
	}
	signed, err := s.Storage.SignURL(ctx, note.FilePath, s.Store.SignExpire)
	if errors.Is(err, ErrSignNotSupported) {
		return s.Storage.PublicURL(note.FilePath), nil
	}
	if err != nil {
		return "", storeErr("sign url", err)
	}
	return signed, nil
}

func toNoteItem(n *models.Note, agg *Aggregate, downloads int64) *types.NoteItem {
	item := &types.NoteItem{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		FileURL:       n.FileURL,
		FileName:      n.FileName,
		FileType:      n.FileType,
		FileSize:      n.FileSize,
		UploaderID:    n.UploaderID,
		CreatedAt:     n.CreatedAt,
		DownloadCount: downloads,
	}
	if agg != nil {
		item.AverageRating = agg.Average
		item.RatingsCount = agg.Count
	}
	return item
}
