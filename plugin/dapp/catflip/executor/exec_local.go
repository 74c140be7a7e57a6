// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

// ExecLocal_Bet 建立待开奖索引
func (c *Catflip) ExecLocal_Bet(payload *ct.CatflipBet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocalRound(receipt)
}

// ExecLocal_FulfillRandomness 索引从待开奖移到胜/负
func (c *Catflip) ExecLocal_FulfillRandomness(payload *ct.CatflipFulfillRandomness, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocalRound(receipt)
}

// ExecLocal_RefundTimeout 索引从待开奖移到已退款
func (c *Catflip) ExecLocal_RefundTimeout(payload *ct.CatflipRefundTimeout, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return c.execLocalRound(receipt)
}

func (c *Catflip) execLocalRound(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
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
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, updateIndex(&rlog)...)
	}
	return set, nil
}

func isRoundLog(ty int32) bool {
	return ty == ct.TyLogCatflipBet || ty == ct.TyLogCatflipSettle || ty == ct.TyLogCatflipRefund
}

// 先写本次状态的索引，再删除待开奖状态下的旧索引
func updateIndex(rlog *ct.ReceiptCatflipRound) (kvs []*types.KeyValue) {
	kvs = append(kvs, addStatusIndex(rlog.Status, rlog.Round, rlog.Index))
	kvs = append(kvs, addAddrIndex(rlog.Status, rlog.Player, rlog.Round, rlog.Index))
	if rlog.Status != ct.RoundStatusPending {
		kvs = append(kvs, delStatusIndex(rlog.PrevStatus, rlog.PrevIndex))
		kvs = append(kvs, delAddrIndex(rlog.PrevStatus, rlog.Player, rlog.PrevIndex))
	}
	return kvs
}

func addStatusIndex(status int32, round *ct.BetRound, index int64) *types.KeyValue {
	record := &ct.CatflipRoundRecord{RoundId: round.GetRoundId(), Index: index, Round: round}
	return &types.KeyValue{Key: calcStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addAddrIndex(status int32, addr string, round *ct.BetRound, index int64) *types.KeyValue {
	record := &ct.CatflipRoundRecord{RoundId: round.GetRoundId(), Index: index, Round: round}
	return &types.KeyValue{Key: calcAddrIndexKey(status, addr, index), Value: types.Encode(record)}
}

func delStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(status, index), Value: nil}
}

// value置nil,提交时，会自动执行删除操作
func delAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcAddrIndexKey(status, addr, index), Value: nil}
}
