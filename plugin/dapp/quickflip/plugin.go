// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quickflip

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/catflip-labs/catflip/plugin/dapp/quickflip/commands"
	"github.com/catflip-labs/catflip/plugin/dapp/quickflip/executor"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     qt.QuickflipX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
	})
}
