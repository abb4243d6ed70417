package service

import (
	"NoteShare/config"
	"NoteShare/pkg/log"
	mq "NoteShare/pkg/rocketmq"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/apache/rocketmq-client-go/v2"
	"go.uber.org/zap"
)

const (
	EventNoteUploaded = "note.uploaded"
	EventNoteRated    = "note.rated"
	EventNoteDeleted  = "note.deleted"
)

// NoteEvent 笔记变更通知，下游据此刷新列表或统计
type NoteEvent struct {
	Type       string    `json:"type"`
	NoteID     uint64    `json:"note_id"`
	UserID     uint64    `json:"user_id,omitempty"`
	Rating     int       `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type IEventPublisher interface {
	Publish(ctx context.Context, event NoteEvent) error
}

// NewEventPublisher producer 为空时（未配置 rocketmq）不发送
func NewEventPublisher(producer rocketmq.Producer, cfg *config.RocketMQConfig) IEventPublisher {
	if producer == nil || cfg == nil {
		return NoopPublisher{}
	}
	return &RocketMQPublisher{Producer: producer, Topic: cfg.Topic}
}

type RocketMQPublisher struct {
	Producer rocketmq.Producer
	Topic    string
}

func (p *RocketMQPublisher) Publish(ctx context.Context, event NoteEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return mq.SendMsg(ctx, p.Producer, p.Topic, event.Type, strconv.FormatUint(event.NoteID, 10), body)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, NoteEvent) error { return nil }

// publish 通知失败不影响主流程，只记录日志
func publish(ctx context.Context, events IEventPublisher, event NoteEvent) {
	if events == nil {
		return
	}
	event.OccurredAt = time.Now()
	if err := events.Publish(ctx, event); err != nil {
		log.L.Warn("publish note event failed",
			zap.String("type", event.Type),
			zap.Uint64("noteId", event.NoteID),
			zap.Error(err))
	}
}
