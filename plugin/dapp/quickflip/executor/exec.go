// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

// Exec_Initialize 创建金库
func (q *Quickflip) Exec_Initialize(payload *qt.QuickflipInitialize, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(q, tx, index)
	return action.Initialize(payload)
}

// Exec_FundVault 注资
func (q *Quickflip) Exec_FundVault(payload *qt.QuickflipFundVault, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(q, tx, index)
	return action.FundVault(payload)
}

// Exec_Bet 下注即开奖
func (q *Quickflip) Exec_Bet(payload *qt.QuickflipBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(q, tx, index)
	return action.Bet(payload)
}
