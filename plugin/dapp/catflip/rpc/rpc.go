// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 构造 catflip 未签名交易的 json rpc 接口
package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

// Jrpc json rpc handler, registered as "catflip"
type Jrpc struct {
	cli *channelClient
}

// Init register rpc
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli}, nil)
}
