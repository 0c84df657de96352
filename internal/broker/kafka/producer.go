package kafkabroker

import (
	"context"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const defaultWriteTimeout = 5 * time.Second

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: timeout,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

func (p *Producer) SendMessage(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	log.Debugf("Message sent: topic=%s key=%s value=%s", p.topic, key, string(value))
	return nil
}

func (p *Producer) Close() error {
	log.Info("Closing Kafka producer...")
	return p.writer.Close()
}
