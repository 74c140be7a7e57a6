// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catflip

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/catflip-labs/catflip/plugin/dapp/catflip/commands"
	"github.com/catflip-labs/catflip/plugin/dapp/catflip/executor"
	"github.com/catflip-labs/catflip/plugin/dapp/catflip/rpc"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ct.CatflipX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
		RPC:      rpc.Init,
	})
}
