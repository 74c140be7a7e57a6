// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

var (
	qlog       = log.New("module", "execs.quickflip")
	driverName = qt.QuickflipX
	subCfg     = defaultSubConfig()
)

type subConfig struct {
	// 随机数来源执行器(需提供 RandNumHash 查询)及回溯区块数，为空时拒绝下注
	RandExec     string `json:"randExec"`
	RandBlockNum int64  `json:"randBlockNum"`
	// 把玩家身份异或进种子，不增加安全性
	FoldPlayerEntropy bool  `json:"foldPlayerEntropy"`
	DefaultCount      int32 `json:"defaultCount"`
	MaxCount          int32 `json:"maxCount"`
}

func defaultSubConfig() subConfig {
	return subConfig{
		RandExec:     "ticket",
		RandBlockNum: 5,
		DefaultCount: ct.DefaultListCount,
		MaxCount:     ct.MaxListCount,
	}
}

// entropySource 本笔下注的外部随机数
var entropySource = func(q *Quickflip, tx *types.Transaction) ([]byte, error) {
	if subCfg.RandExec == "" {
		return nil, qt.ErrRandomnessUnavailable
	}
	req := &types.ReqRandHash{
		ExecName: subCfg.RandExec,
		BlockNum: subCfg.RandBlockNum,
		Hash:     q.GetLastHash(),
	}
	return q.GetExecutorAPI().GetRandNum(req)
}

// Init register the quickflip driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	if sub != nil {
		cfgs := defaultSubConfig()
		types.MustDecode(sub, &cfgs)
		if cfgs.DefaultCount <= 0 {
			cfgs.DefaultCount = ct.DefaultListCount
		}
		if cfgs.MaxCount < cfgs.DefaultCount {
			cfgs.MaxCount = cfgs.DefaultCount
		}
		subCfg = cfgs
	}
	drivers.Register(cfg, GetName(), newQuickflip, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType init exec type func list
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Quickflip{}))
}

// Quickflip 下注即开奖
type Quickflip struct {
	drivers.DriverBase
}

func newQuickflip() drivers.Driver {
	q := &Quickflip{}
	q.SetChild(q)
	q.SetExecutorType(types.LoadExecutorType(driverName))
	return q
}

// GetName get name
func GetName() string {
	return newQuickflip().GetName()
}

// GetDriverName get driver name
func (q *Quickflip) GetDriverName() string {
	return driverName
}

// CheckTx check tx
func (q *Quickflip) CheckTx(tx *types.Transaction, index int) error {
	if drivers.ExecAddress(string(tx.Execer)) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	if tx.GetSignature() == nil || len(tx.GetSignature().GetSignature()) == 0 {
		return ct.ErrMissingSignature
	}
	return nil
}

func vaultAddress(execName string) string {
	return drivers.ExecAddress(execName + qt.VaultSuffix)
}
