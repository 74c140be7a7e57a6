// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

/*
 状态库:
   mavl-catflip-vault            金库
   mavl-catflip-round-<roundId>  每局记录
 本地库索引, value 为 CatflipRoundRecord:
   LODB-catflip-status:<status>:<index>
   LODB-catflip-addr:<status>:<addr>:<index>
*/

var (
	keyPrefixStateDB = "mavl-" + ct.CatflipX + "-"
	keyPrefixLocalDB = "LODB-" + ct.CatflipX + "-"
)

func vaultKey() []byte {
	return []byte(keyPrefixStateDB + "vault")
}

func roundKey(roundID string) []byte {
	return []byte(keyPrefixStateDB + "round-" + roundID)
}

func calcStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("%sstatus:%d:%018d", keyPrefixLocalDB, status, index))
}

func calcStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("%sstatus:%d:", keyPrefixLocalDB, status))
}

func calcAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf("%saddr:%d:%s:%018d", keyPrefixLocalDB, status, addr, index))
}

func calcAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf("%saddr:%d:%s:", keyPrefixLocalDB, status, addr))
}
