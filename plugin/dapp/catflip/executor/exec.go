// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

// Exec_Initialize 创建金库
func (c *Catflip) Exec_Initialize(payload *ct.CatflipInitialize, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).Initialize(payload)
}

// Exec_FundVault 金库注资
func (c *Catflip) Exec_FundVault(payload *ct.CatflipFundVault, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).FundVault(payload)
}

// Exec_Bet 下注
func (c *Catflip) Exec_Bet(payload *ct.CatflipBet, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).Bet(payload)
}

// Exec_FulfillRandomness 开奖
func (c *Catflip) Exec_FulfillRandomness(payload *ct.CatflipFulfillRandomness, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).FulfillRandomness(payload)
}

// Exec_RefundTimeout 超时退款
func (c *Catflip) Exec_RefundTimeout(payload *ct.CatflipRefundTimeout, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).RefundTimeout(payload)
}

// Exec_SetPause pause or resume betting
func (c *Catflip) Exec_SetPause(payload *ct.CatflipSetPause, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).SetPause(payload)
}

// Exec_SetLimits update bet limits
func (c *Catflip) Exec_SetLimits(payload *ct.CatflipSetLimits, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).SetLimits(payload)
}

// Exec_SetEdge update house edge
func (c *Catflip) Exec_SetEdge(payload *ct.CatflipSetEdge, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).SetEdge(payload)
}

// Exec_SetOracle rotate oracle key
func (c *Catflip) Exec_SetOracle(payload *ct.CatflipSetOracle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(c, tx, index).SetOracle(payload)
}
