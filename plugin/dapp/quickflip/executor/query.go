// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/common"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

// Query_GetVault 金库信息
func (q *Quickflip) Query_GetVault(in *types.ReqNil) (types.Message, error) {
	vault, err := readVault(q.GetStateDB())
	if err != nil {
		return nil, err
	}
	vaultAddr := vaultAddress(q.GetName())
	acc := q.GetCoinsAccount().LoadExecAccount(vaultAddr, drivers.ExecAddress(q.GetName()))
	return &qt.ReplyQuickflipVault{Vault: vault, Balance: acc.GetBalance(), VaultAddr: vaultAddr}, nil
}

// Query_GetVaultLayout 57 字节金库布局
func (q *Quickflip) Query_GetVaultLayout(in *types.ReqNil) (types.Message, error) {
	vault, err := readVault(q.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &qt.ReplyQuickflipLayout{Data: common.ToHex(qt.NewVaultImage(vault).Encode())}, nil
}

// Query_ListFlips 开奖历史，可按玩家过滤
func (q *Quickflip) Query_ListFlips(in *qt.ReqQuickflipFlips) (types.Message, error) {
	direction := int32(0)
	if in.GetDirection() == 1 {
		direction = 1
	}
	count := subCfg.DefaultCount
	if in.GetCount() > 0 {
		count = in.GetCount()
	}
	if count > subCfg.MaxCount {
		count = subCfg.MaxCount
	}
	var prefix, key []byte
	if in.GetPlayer() == "" {
		prefix = calcFlipPrefix()
		key = calcFlipKey(in.GetIndex())
	} else {
		prefix = calcAddrFlipPrefix(in.GetPlayer())
		key = calcAddrFlipKey(in.GetPlayer(), in.GetIndex())
	}
	if in.GetIndex() == 0 {
		key = nil
	}
	values, err := q.GetLocalDB().List(prefix, key, count, direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &qt.ReplyQuickflipFlips{}
	for _, value := range values {
		var flip qt.ReceiptQuickflipBet
		if err := types.Decode(value, &flip); err != nil {
			qlog.Error("Query_ListFlips", "decode err", err)
			continue
		}
		reply.Flips = append(reply.Flips, &flip)
	}
	return reply, nil
}
