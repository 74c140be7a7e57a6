// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"

	"github.com/33cn/chain33/common"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

// FlipSeed sha256(randHash || player || index) 的前 8 字节。
// index 是交易在链上的全局序号，由打包顺序决定；交易哈希不参与，
// 玩家换 nonce 重新签名不会改变结果。
func FlipSeed(randHash []byte, player string, index int64) uint64 {
	buf := make([]byte, 0, len(randHash)+len(player)+8)
	buf = append(buf, randHash...)
	buf = append(buf, player...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(index))
	return binary.LittleEndian.Uint64(common.Sha256(buf)[:8])
}

// FoldPlayerEntropy 取玩家身份的前 8 字节按小端拼成 u64，异或进 seed。
// 同一玩家每次折叠的值相同，不增加不可预测性。
func FoldPlayerEntropy(seed uint64, player string) uint64 {
	id := ct.IdentityOf(player)
	return seed ^ binary.LittleEndian.Uint64(id[:8])
}

// IsDirectWin seed % 100 < 49
func IsDirectWin(seed uint64) bool {
	return seed%100 < ct.DirectWinThreshold
}

// NewVaultImage 57 字节最小金库布局
func NewVaultImage(v *QuickflipVault) *ct.MinimalVaultImage {
	return &ct.MinimalVaultImage{
		IsInitialized: v.GetIsInitialized(),
		Authority:     ct.IdentityOf(v.GetAuthority()),
		MinBet:        uint64(v.GetMinBet()),
		TotalBets:     uint64(v.GetTotalBets()),
		TotalVolume:   uint64(v.GetTotalVolume()),
	}
}
