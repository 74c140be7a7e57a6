// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

// ExecDelLocal_Bet 回滚开奖历史
func (q *Quickflip) ExecDelLocal_Bet(payload *qt.QuickflipBet, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, flip := range flipLogs(receipt) {
		set.KV = append(set.KV,
			&types.KeyValue{Key: calcFlipKey(flip.Index), Value: nil},
			&types.KeyValue{Key: calcAddrFlipKey(flip.Player, flip.Index), Value: nil})
	}
	return set, nil
}
