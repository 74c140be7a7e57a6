// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/33cn/chain33/common"
	cfcmd "github.com/catflip-labs/catflip/plugin/dapp/catflip/commands"
	qt "github.com/catflip-labs/catflip/plugin/dapp/quickflip/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVaultLayout(t *testing.T) {
	vault := &qt.QuickflipVault{IsInitialized: true, Authority: "1auth", MinBet: 100000000, TotalBets: 4, TotalVolume: 400000000}
	res := &qt.ReplyQuickflipLayout{Data: common.ToHex(qt.NewVaultImage(vault).Encode())}
	out, err := parseVaultLayout(res)
	require.Nil(t, err)
	view := out.(*cfcmd.LayoutView)
	assert.Equal(t, 57, view.Size)
	assert.Equal(t, res.Data, view.Data)

	_, err = parseVaultLayout(&qt.ReplyQuickflipLayout{Data: "0x0102"})
	assert.NotNil(t, err)
}

func TestCmdTree(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range Cmd().Commands() {
		names[sub.Name()] = true
	}
	for _, n := range []string{"init", "fund", "bet", "vault", "flips"} {
		assert.True(t, names[n], n)
	}
	assert.NotNil(t, VaultCmd().Flags().Lookup("layout"))
}
