// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

// ExecDelLocal_Bet 回滚下注索引
func (c *Catflip) ExecDelLocal_Bet(payload *ct.CatflipBet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocalRound(receipt)
}

// ExecDelLocal_FulfillRandomness 回滚开奖索引
func (c *Catflip) ExecDelLocal_FulfillRandomness(payload *ct.CatflipFulfillRandomness, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocalRound(receipt)
}

// ExecDelLocal_RefundTimeout 回滚退款索引
func (c *Catflip) ExecDelLocal_RefundTimeout(payload *ct.CatflipRefundTimeout, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execDelLocalRound(receipt)
}

func (c *Catflip) execDelLocalRound(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if !isRoundLog(item.Ty) {
			continue
		}
		var rlog ct.ReceiptCatflipRound
		err := types.Decode(item.Log, &rlog)
		if err != nil {
			panic(err)
		}
		//状态数据库由于默克尔树特性，之前生成的索引无效，故不需要回滚，只回滚localDB
		set.KV = append(set.KV, rollbackIndex(&rlog)...)
	}
	return set, nil
}

func rollbackIndex(rlog *ct.ReceiptCatflipRound) (kvs []*types.KeyValue) {
	kvs = append(kvs, delStatusIndex(rlog.Status, rlog.Index))
	kvs = append(kvs, delAddrIndex(rlog.Status, rlog.Player, rlog.Index))
	if rlog.Status != ct.RoundStatusPending {
		pending := pendingSnapshot(rlog.Round, rlog.PrevIndex)
		kvs = append(kvs, addStatusIndex(rlog.PrevStatus, pending, rlog.PrevIndex))
		kvs = append(kvs, addAddrIndex(rlog.PrevStatus, rlog.Player, pending, rlog.PrevIndex))
	}
	return kvs
}

// pendingSnapshot 由结算后的记录还原下注时的记录
func pendingSnapshot(round *ct.BetRound, prevIndex int64) *ct.BetRound {
	pending := *round
	pending.IsSettled = false
	pending.IsWinner = false
	pending.Status = ct.RoundStatusPending
	pending.Payout = 0
	pending.CloseTxHash = ""
	pending.Index = prevIndex
	return &pending
}
