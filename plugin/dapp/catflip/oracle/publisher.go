// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// EventFulfillSubmitted 开奖交易已发送
const EventFulfillSubmitted = "FulfillSubmitted"

// Event 发布到 kafka 的消息体
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	RoundID   string `json:"roundId"`
	Player    string `json:"player"`
	TxHash    string `json:"txHash"`
	IsWinner  bool   `json:"isWinner"`
	Timestamp int64  `json:"timestamp"`
}

// NewEvent new event with a fresh id
func NewEvent(typ, roundID, player, txHash string, isWinner bool) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      typ,
		RoundID:   roundID,
		Player:    player,
		TxHash:    txHash,
		IsWinner:  isWinner,
		Timestamp: time.Now().Unix(),
	}
}

// Publisher event sink
type Publisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

// KafkaPublisher 以 roundId 作为消息 key，同一局的事件落在同一分区
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher new kafka publisher
func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
	}}
}

// Publish publish one event
func (p *KafkaPublisher) Publish(ctx context.Context, e *Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(e.RoundID), Value: value, Time: time.Unix(e.Timestamp, 0)}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "publish %s", e.Type)
	}
	return nil
}

// Close close writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, e *Event) error { return nil }
func (nopPublisher) Close() error                                { return nil }
