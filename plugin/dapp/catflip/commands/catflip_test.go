// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/types"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoins(t *testing.T) {
	v, err := ParseCoins("1")
	assert.Nil(t, err)
	assert.Equal(t, ct.CoinPrecision, v)

	v, err = ParseCoins("0.00000001")
	assert.Nil(t, err)
	assert.Equal(t, int64(1), v)

	v, err = ParseCoins("12.5")
	assert.Nil(t, err)
	assert.Equal(t, int64(1250000000), v)

	_, err = ParseCoins("0.000000001")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("0")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("-3")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("abc")
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	_, err = ParseCoins("100000000000000")
	assert.Equal(t, ct.ErrMathOverflow, errors.Cause(err))

	assert.Equal(t, "12.5", FormatCoins(1250000000))
	assert.Equal(t, "0.00000001", FormatCoins(1))
}

func TestHouseProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.toml")
	data := `minBet = "0.5"
maxExposureBps = 500
houseEdgeBps = 200
oraclePubKey = "04abcd"
`
	require.Nil(t, os.WriteFile(path, []byte(data), 0600))

	profile, err := LoadHouseProfile(path)
	require.Nil(t, err)
	payload, err := profile.Payload()
	require.Nil(t, err)
	assert.Equal(t, int64(50000000), payload.MinBet)
	assert.Equal(t, int32(500), payload.MaxExposureBps)
	assert.Equal(t, int32(200), payload.HouseEdgeBps)
	assert.Equal(t, "04abcd", payload.OraclePubKey)

	profile.HouseEdgeBps = 10001
	_, err = profile.Payload()
	assert.Equal(t, ct.ErrInvalidBps, errors.Cause(err))

	profile.HouseEdgeBps = 200
	profile.OraclePubKey = ""
	_, err = profile.Payload()
	assert.NotNil(t, err)

	_, err = LoadHouseProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.NotNil(t, err)
}

func TestCmdTree(t *testing.T) {
	cmd := Cmd()
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, n := range []string{"init", "fund", "bet", "fulfill", "refund", "pause", "limits", "edge", "oracle", "vault", "round", "rounds", "layout"} {
		assert.True(t, names[n], n)
	}
	assert.NotNil(t, RoundCmd().Flags().Lookup("layout"))
}

func TestParseLayout(t *testing.T) {
	round := &ct.BetRound{
		Player:          "1player",
		Stake:           ct.CoinPrecision,
		PotentialPayout: 196000000,
		Timestamp:       1656569131,
		Height:          42,
		RandomnessSeed:  ct.RoundSeed([]byte("bet")),
		IsSettled:       true,
		IsWinner:        true,
	}
	hexData := common.ToHex(ct.NewBetRoundImage(round).Encode())
	view, err := ParseLayout(hexData, BetRoundFields)
	require.Nil(t, err)
	assert.Equal(t, ct.BetRoundSize, view.Size)
	fields := view.Fields.(*betRoundFields)
	id := ct.IdentityOf("1player")
	assert.Equal(t, common.ToHex(id[:]), fields.Player)
	assert.Equal(t, "1", fields.Stake)
	assert.Equal(t, "1.96", fields.PotentialPayout)
	assert.Equal(t, uint64(42), fields.Slot)
	assert.Equal(t, common.ToHex(round.RandomnessSeed), fields.RandomnessSeed)
	assert.True(t, fields.IsSettled)
	assert.True(t, fields.IsWinner)
	assert.Equal(t, uint8(255), fields.Bump)

	vault := &ct.Vault{Authority: "1auth", MinBet: ct.CoinPrecision, MaxExposureBps: 500, HouseEdgeBps: 200, TotalBets: 3}
	img, err := ct.NewVaultImage(vault)
	require.Nil(t, err)
	view, err = ParseLayout(common.ToHex(img.Encode()), VaultFields)
	require.Nil(t, err)
	vf := view.Fields.(*vaultFields)
	assert.Equal(t, uint16(500), vf.MaxExposureBps)
	assert.Equal(t, uint64(3), vf.TotalBets)

	minimal := &ct.MinimalVaultImage{IsInitialized: true, MinBet: 5, TotalBets: 1, TotalVolume: 5}
	view, err = ParseLayout(common.ToHex(minimal.Encode()), MinimalVaultFields)
	require.Nil(t, err)
	assert.Equal(t, ct.MinimalVaultSize, view.Size)
	assert.Equal(t, "0.00000005", view.Fields.(*minimalVaultFields).MinBet)

	// 长度或鉴别符不符
	_, err = ParseLayout(hexData, VaultFields)
	assert.Equal(t, ct.ErrInvalidLayout, errors.Cause(err))
	_, err = ParseLayout(hexData[:len(hexData)-2], BetRoundFields)
	assert.Equal(t, ct.ErrInvalidLayout, errors.Cause(err))
	_, err = ParseLayout("zz", BetRoundFields)
	assert.NotNil(t, err)
}
