// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

const (
	listDESC = int32(0)
	listASC  = int32(1)
)

// Query_GetVault 金库信息及可用余额
func (c *Catflip) Query_GetVault(in *types.ReqNil) (types.Message, error) {
	vault, err := readVault(c.GetStateDB())
	if err != nil {
		return nil, err
	}
	vaultAddr := vaultAddress(c.GetName())
	acc := c.GetCoinsAccount().LoadExecAccount(vaultAddr, drivers.ExecAddress(c.GetName()))
	return &ct.ReplyCatflipVault{Vault: vault, Balance: acc.GetBalance(), VaultAddr: vaultAddr}, nil
}

// Query_GetBetRound 按 roundId 查询，已退款的局返回 ErrBetRoundNotFound
func (c *Catflip) Query_GetBetRound(in *ct.ReqCatflipRound) (types.Message, error) {
	round, err := readRound(c.GetStateDB(), in.GetRoundId())
	if err != nil {
		return nil, err
	}
	return round, nil
}

// Query_ListBetRounds 按状态(及玩家)分页查询
func (c *Catflip) Query_ListBetRounds(in *ct.ReqCatflipRoundList) (types.Message, error) {
	return listRounds(c.GetLocalDB(), in)
}

// Query_GetVaultLayout 金库的定长二进制布局
func (c *Catflip) Query_GetVaultLayout(in *types.ReqNil) (types.Message, error) {
	vault, err := readVault(c.GetStateDB())
	if err != nil {
		return nil, err
	}
	img, err := ct.NewVaultImage(vault)
	if err != nil {
		return nil, err
	}
	return &ct.ReplyCatflipLayout{Data: common.ToHex(img.Encode())}, nil
}

// Query_GetBetRoundLayout 单局的定长二进制布局
func (c *Catflip) Query_GetBetRoundLayout(in *ct.ReqCatflipRound) (types.Message, error) {
	round, err := readRound(c.GetStateDB(), in.GetRoundId())
	if err != nil {
		return nil, err
	}
	return &ct.ReplyCatflipLayout{Data: common.ToHex(ct.NewBetRoundImage(round).Encode())}, nil
}

func listRounds(db dbm.Lister, param *ct.ReqCatflipRoundList) (types.Message, error) {
	switch param.GetStatus() {
	case ct.RoundStatusPending, ct.RoundStatusWon, ct.RoundStatusLost, ct.RoundStatusRefunded:
	default:
		return nil, types.ErrInvalidParam
	}
	direction := listDESC
	if param.GetDirection() == listASC {
		direction = listASC
	}
	count := subCfg.DefaultCount
	if param.GetCount() > 0 {
		count = param.GetCount()
	}
	if count > subCfg.MaxCount {
		count = subCfg.MaxCount
	}
	var prefix, key []byte
	if param.GetPlayer() == "" {
		prefix = calcStatusIndexPrefix(param.Status)
		key = calcStatusIndexKey(param.Status, param.GetIndex())
	} else {
		prefix = calcAddrIndexPrefix(param.Status, param.GetPlayer())
		key = calcAddrIndexKey(param.Status, param.GetPlayer(), param.GetIndex())
	}
	//第一次查询
	if param.GetIndex() == 0 {
		key = nil
	}
	values, err := db.List(prefix, key, count, direction)
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	reply := &ct.ReplyCatflipRoundList{}
	for _, value := range values {
		var record ct.CatflipRoundRecord
		if err := types.Decode(value, &record); err != nil {
			clog.Error("listRounds", "decode err", err)
			continue
		}
		if record.Round != nil {
			reply.Rounds = append(reply.Rounds, record.Round)
		}
	}
	return reply, nil
}
