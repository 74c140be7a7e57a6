// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle 链下 VRF 预言机：轮询待开奖的局，计算证明并提交开奖交易
package oracle

import (
	"bytes"
	"context"
	"time"

	"github.com/33cn/chain33/common"
	log "github.com/33cn/chain33/common/log/log15"
	vrf "github.com/33cn/chain33/common/vrf/secp256k1"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
)

var olog = log.New("module", "catflip.oracle")

// ErrKeyMismatch 本地 vrf 私钥与链上登记的预言机公钥不一致
var ErrKeyMismatch = errors.New("ErrKeyMismatch")

// Fulfiller 预言机主循环
type Fulfiller struct {
	chain     Chain
	locker    Locker
	publisher Publisher
	metrics   *Metrics
	key       *vrf.PrivateKey
	cfg       OracleConfig
	// 已提交但还未打包的局，LockTTL 内不重复提交
	submitted map[string]time.Time
}

// NewFulfiller locker / publisher 传 nil 时使用空实现
func NewFulfiller(cfg OracleConfig, chain Chain, key *vrf.PrivateKey, locker Locker, publisher Publisher, metrics *Metrics) *Fulfiller {
	if locker == nil {
		locker = nopLocker{}
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Fulfiller{
		chain:     chain,
		locker:    locker,
		publisher: publisher,
		metrics:   metrics,
		key:       key,
		cfg:       cfg,
		submitted: make(map[string]time.Time),
	}
}

// CheckKey 启动时确认链上登记的公钥就是本地私钥对应的公钥
func (f *Fulfiller) CheckKey(ctx context.Context) error {
	vault, err := f.chain.Vault(ctx)
	if err != nil {
		return err
	}
	local := ct.MarshalOraclePubKey(VrfPublicKey(f.key))
	if !bytes.Equal(local, vault.GetOraclePubKey()) {
		olog.Error("CheckKey", "local", common.ToHex(local), "chain", common.ToHex(vault.GetOraclePubKey()))
		return ErrKeyMismatch
	}
	return nil
}

// Run 按 PollInterval 轮询直到 ctx 取消
func (f *Fulfiller) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.cfg.PollInterval)
	defer ticker.Stop()
	for {
		if _, err := f.Poll(ctx); err != nil && ctx.Err() == nil {
			olog.Error("Poll", "err", err)
		}
		select {
		case <-ctx.Done():
			olog.Info("fulfiller stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Poll 处理一轮所有待开奖的局，返回成功提交的数量
func (f *Fulfiller) Poll(ctx context.Context) (int, error) {
	var (
		index int64
		sent  int
		seen  int
	)
	for {
		rounds, err := f.chain.PendingRounds(ctx, index, f.cfg.BatchSize)
		if err != nil {
			f.metrics.Failures.WithLabelValues("poll").Inc()
			return sent, err
		}
		seen += len(rounds)
		for _, round := range rounds {
			if ctx.Err() != nil {
				return sent, ctx.Err()
			}
			ok, err := f.fulfill(ctx, round)
			if err != nil {
				olog.Error("fulfill", "roundId", round.GetRoundId(), "err", err)
				continue
			}
			if ok {
				sent++
			}
		}
		if int32(len(rounds)) < f.cfg.BatchSize {
			break
		}
		index = rounds[len(rounds)-1].GetIndex()
	}
	f.metrics.Pending.Set(float64(seen))
	f.metrics.markPoll()
	f.expireSubmitted()
	return sent, nil
}

// Prove vrf(seed)，返回证明和结果
func (f *Fulfiller) Prove(round *ct.BetRound) (proof []byte, isWinner bool) {
	out, proof := f.key.Evaluate(round.GetRandomnessSeed())
	return proof, ct.IsWinningOutput(out)
}

func (f *Fulfiller) fulfill(ctx context.Context, round *ct.BetRound) (bool, error) {
	if at, ok := f.submitted[round.GetRoundId()]; ok && time.Since(at) < f.cfg.LockTTL {
		return false, nil
	}
	unlock, err := f.locker.Acquire(ctx, round.GetRoundId(), f.cfg.LockTTL)
	if err == ErrLockHeld {
		return false, nil
	}
	if err != nil {
		f.metrics.Failures.WithLabelValues("lock").Inc()
		return false, err
	}

	proof, isWinner := f.Prove(round)
	hash, err := f.chain.SubmitFulfill(ctx, round.GetRoundId(), common.ToHex(proof))
	if err != nil {
		// 成功时不释放，锁随 ttl 过期
		unlock()
		f.metrics.Failures.WithLabelValues("submit").Inc()
		return false, err
	}
	f.submitted[round.GetRoundId()] = time.Now()
	outcome := "lost"
	if isWinner {
		outcome = "won"
	}
	f.metrics.Fulfilled.WithLabelValues(outcome).Inc()
	olog.Info("fulfill", "roundId", round.GetRoundId(), "tx", hash, "outcome", outcome)

	event := NewEvent(EventFulfillSubmitted, round.GetRoundId(), round.GetPlayer(), hash, isWinner)
	if err := f.publisher.Publish(ctx, event); err != nil {
		// 交易已经发出，事件丢失不影响开奖
		f.metrics.Failures.WithLabelValues("publish").Inc()
		olog.Error("publish", "roundId", round.GetRoundId(), "err", err)
	}
	return true, nil
}

func (f *Fulfiller) expireSubmitted() {
	for id, at := range f.submitted {
		if time.Since(at) >= f.cfg.LockTTL {
			delete(f.submitted, id)
		}
	}
}
