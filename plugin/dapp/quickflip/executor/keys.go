// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

var (
	keyPrefixStateDB = "mavl-" + qt.QuickflipX + "-"
	keyPrefixLocalDB = "LODB-" + qt.QuickflipX + "-"
)

func vaultKey() []byte {
	return []byte(keyPrefixStateDB + "vault")
}

func calcFlipKey(index int64) []byte {
	return []byte(fmt.Sprintf("%sflip:%018d", keyPrefixLocalDB, index))
}

func calcFlipPrefix() []byte {
	return []byte(keyPrefixLocalDB + "flip:")
}

func calcAddrFlipKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("%saddr:%s:%018d", keyPrefixLocalDB, addr, index))
}

func calcAddrFlipPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%saddr:%s:", keyPrefixLocalDB, addr))
}
