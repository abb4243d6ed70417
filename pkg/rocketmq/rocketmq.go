package rocketmq

import (
	"NoteShare/config"
	"NoteShare/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 未配置 rocketmq 时返回 nil，调用方退化为不发送事件
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Info("rocketmq not configured, note events disabled")
		return nil
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Error("create producer", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")

	return p
}

// SendMsg 同步发送一条带 tag 的消息
func SendMsg(ctx context.Context, p rocketmq.Producer, topic, tag, key string, body []byte) error {
	msg := primitive.NewMessage(topic, body)
	msg.WithTag(tag)
	if key != "" {
		msg.WithKeys([]string{key})
	}

	res, err := p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.String("msgId", res.MsgID), zap.String("tag", tag))
	return nil
}
