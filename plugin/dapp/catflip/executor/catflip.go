// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

var (
	clog       = log.New("module", "execs.catflip")
	driverName = ct.CatflipX
	subCfg     = defaultSubConfig()
)

type subConfig struct {
	// 下注后经过多少个区块仍未开奖，玩家可以申请退款
	TimeoutBlocks int64 `json:"timeoutBlocks"`
	DefaultCount  int32 `json:"defaultCount"`
	MaxCount      int32 `json:"maxCount"`
}

func defaultSubConfig() subConfig {
	return subConfig{
		TimeoutBlocks: ct.DefaultTimeoutBlocks,
		DefaultCount:  ct.DefaultListCount,
		MaxCount:      ct.MaxListCount,
	}
}

// Init register the catflip driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	if sub != nil {
		cfgs := defaultSubConfig()
		types.MustDecode(sub, &cfgs)
		if cfgs.TimeoutBlocks <= 0 {
			cfgs.TimeoutBlocks = ct.DefaultTimeoutBlocks
		}
		if cfgs.DefaultCount <= 0 {
			cfgs.DefaultCount = ct.DefaultListCount
		}
		if cfgs.MaxCount < cfgs.DefaultCount {
			cfgs.MaxCount = cfgs.DefaultCount
		}
		subCfg = cfgs
	}
	drivers.Register(cfg, GetName(), newCatflip, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType init exec type func list
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Catflip{}))
}

// Catflip 两阶段开奖的猜硬币执行器
type Catflip struct {
	drivers.DriverBase
}

func newCatflip() drivers.Driver {
	c := &Catflip{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetName get name
func GetName() string {
	return newCatflip().GetName()
}

// GetDriverName get driver name
func (c *Catflip) GetDriverName() string {
	return driverName
}

// CheckTx 签名是所有动作的前置条件
func (c *Catflip) CheckTx(tx *types.Transaction, index int) error {
	if drivers.ExecAddress(string(tx.Execer)) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	if tx.GetSignature() == nil || len(tx.GetSignature().GetSignature()) == 0 {
		return ct.ErrMissingSignature
	}
	return nil
}

// vaultAddress 金库地址，没有私钥，只能由合约动用
func vaultAddress(execName string) string {
	return drivers.ExecAddress(execName + ct.VaultSuffix)
}
