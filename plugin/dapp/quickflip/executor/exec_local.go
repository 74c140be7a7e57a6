// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

// ExecLocal_Bet 记录开奖历史
func (q *Quickflip) ExecLocal_Bet(payload *qt.QuickflipBet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, flip := range flipLogs(receipt) {
		value := types.Encode(flip)
		set.KV = append(set.KV,
			&types.KeyValue{Key: calcFlipKey(flip.Index), Value: value},
			&types.KeyValue{Key: calcAddrFlipKey(flip.Player, flip.Index), Value: value})
	}
	return set, nil
}

func flipLogs(receipt *types.ReceiptData) []*qt.ReceiptQuickflipBet {
	var flips []*qt.ReceiptQuickflipBet
	for _, item := range receipt.Logs {
		if item.Ty != qt.TyLogQuickflipBet {
			continue
		}
		var flip qt.ReceiptQuickflipBet
		if err := types.Decode(item.Log, &flip); err != nil {
			panic(err)
		}
		flips = append(flips, &flip)
	}
	return flips
}
