// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/33cn/chain33/common"
	vrf "github.com/33cn/chain33/common/vrf/secp256k1"
	"github.com/33cn/chain33/util"
	ct "github.com/catflip-labs/catflip/plugin/dapp/catflip/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	rounds    []*ct.BetRound
	vault     *ct.Vault
	submitted map[string]string
	submitErr error
}

func newFakeChain(n int) *fakeChain {
	c := &fakeChain{submitted: make(map[string]string)}
	for i := 0; i < n; i++ {
		c.rounds = append(c.rounds, &ct.BetRound{
			RoundId:        fmt.Sprintf("player-%d", i+1),
			Player:         "player",
			RandomnessSeed: ct.RoundSeed([]byte(fmt.Sprintf("tx-%d", i))),
			Status:         ct.RoundStatusPending,
			Index:          int64(i + 1),
		})
	}
	return c
}

func (c *fakeChain) PendingRounds(ctx context.Context, index int64, count int32) ([]*ct.BetRound, error) {
	var out []*ct.BetRound
	for _, r := range c.rounds {
		if r.Index > index && int32(len(out)) < count {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *fakeChain) Vault(ctx context.Context) (*ct.Vault, error) {
	return c.vault, nil
}

func (c *fakeChain) SubmitFulfill(ctx context.Context, roundID, proof string) (string, error) {
	if c.submitErr != nil {
		return "", c.submitErr
	}
	c.submitted[roundID] = proof
	return "0x" + roundID, nil
}

type recordPublisher struct {
	events []*Event
}

func (p *recordPublisher) Publish(ctx context.Context, e *Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordPublisher) Close() error { return nil }

type countLocker struct {
	held     map[string]bool
	released int
}

func (l *countLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	if l.held[key] {
		return nil, ErrLockHeld
	}
	l.held[key] = true
	return func() {
		delete(l.held, key)
		l.released++
	}, nil
}

func testKey(t *testing.T) *vrf.PrivateKey {
	priv, _ := vrf.GenerateKey()
	require.NotNil(t, priv)
	return priv.(*vrf.PrivateKey)
}

func testOracleConfig() OracleConfig {
	return OracleConfig{PollInterval: time.Second, BatchSize: 2, LockTTL: time.Minute}
}

func TestPollSubmitsVerifiableProofs(t *testing.T) {
	key := testKey(t)
	chain := newFakeChain(5)
	pub := &recordPublisher{}
	f := NewFulfiller(testOracleConfig(), chain, key, nil, pub, nil)

	sent, err := f.Poll(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 5, sent)
	require.Len(t, chain.submitted, 5)
	require.Len(t, pub.events, 5)

	pubKey := ct.MarshalOraclePubKey(VrfPublicKey(key))
	for i, round := range chain.rounds {
		proof, err := common.FromHex(chain.submitted[round.RoundId])
		require.Nil(t, err)
		out, err := ct.VerifyRandomness(pubKey, round.RandomnessSeed, proof)
		require.Nil(t, err)
		assert.Equal(t, ct.IsWinningOutput(out), pub.events[i].IsWinner)
		assert.Equal(t, EventFulfillSubmitted, pub.events[i].Type)
		assert.NotEmpty(t, pub.events[i].ID)
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Polls))
	assert.Equal(t, float64(5), testutil.ToFloat64(f.metrics.Pending))

	// 未打包前再次轮询不会重复提交
	sent, err = f.Poll(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 0, sent)
}

func TestPollLockHeld(t *testing.T) {
	chain := newFakeChain(2)
	locker := &countLocker{held: map[string]bool{"player-1": true}}
	f := NewFulfiller(testOracleConfig(), chain, testKey(t), locker, nil, nil)

	sent, err := f.Poll(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 1, sent)
	_, ok := chain.submitted["player-1"]
	assert.False(t, ok)
	// 成功提交的锁保留到 ttl
	assert.True(t, locker.held["player-2"])
	assert.Equal(t, 0, locker.released)
}

func TestPollSubmitFailure(t *testing.T) {
	chain := newFakeChain(1)
	chain.submitErr = errors.New("mempool full")
	locker := &countLocker{held: map[string]bool{}}
	f := NewFulfiller(testOracleConfig(), chain, testKey(t), locker, nil, nil)

	sent, err := f.Poll(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, locker.released)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.Failures.WithLabelValues("submit")))

	chain.submitErr = nil
	sent, err = f.Poll(context.Background())
	require.Nil(t, err)
	assert.Equal(t, 1, sent)
}

func TestCheckKey(t *testing.T) {
	key := testKey(t)
	chain := newFakeChain(0)
	chain.vault = &ct.Vault{OraclePubKey: ct.MarshalOraclePubKey(VrfPublicKey(key))}
	f := NewFulfiller(testOracleConfig(), chain, key, nil, nil, nil)
	assert.Nil(t, f.CheckKey(context.Background()))

	chain.vault.OraclePubKey = ct.MarshalOraclePubKey(VrfPublicKey(testKey(t)))
	assert.Equal(t, ErrKeyMismatch, f.CheckKey(context.Background()))
}

func TestParseKeys(t *testing.T) {
	key := testKey(t)
	parsed, err := ParseVrfKey(common.ToHex(key.D.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, 0, key.X.Cmp(parsed.X))
	assert.Equal(t, 0, key.Y.Cmp(parsed.Y))

	_, err = ParseVrfKey("0x00")
	assert.NotNil(t, err)
	_, err = ParseVrfKey(common.ToHex(make([]byte, 33)))
	assert.NotNil(t, err)
	one, err := ParseVrfKey("0x01")
	require.Nil(t, err)
	assert.Len(t, ct.MarshalOraclePubKey(VrfPublicKey(one)), 65)
	_, err = ParseVrfKey("zz")
	assert.NotNil(t, err)

	_, priv := util.Genaddress()
	signer, err := ParseSignKey(common.ToHex(priv.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, priv.PubKey().Bytes(), signer.PubKey().Bytes())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracle.toml")
	data := `
[chain]
rpcAddr = "http://127.0.0.1:8801"
paraName = "user.p.test."

[oracle]
vrfKey = "0x01"
pollInterval = "5s"
batchSize = 10

[kafka]
brokers = ["127.0.0.1:9092"]
topic = "fulfill"
`
	require.Nil(t, os.WriteFile(path, []byte(data), 0600))
	t.Setenv(EnvSignKey, "0x02")
	t.Setenv(EnvRedisAddr, "127.0.0.1:6379")

	cfg, err := LoadConfig(path)
	require.Nil(t, err)
	assert.Equal(t, "user.p.test.", cfg.Chain.ParaName)
	assert.Equal(t, "0x01", cfg.Oracle.VrfKey)
	assert.Equal(t, "0x02", cfg.Oracle.SignKey)
	assert.Equal(t, 5*time.Second, cfg.Oracle.PollInterval)
	assert.Equal(t, int32(10), cfg.Oracle.BatchSize)
	assert.Equal(t, time.Minute, cfg.Oracle.LockTTL)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"127.0.0.1:9092"}, cfg.Kafka.Brokers)

	t.Setenv(EnvSignKey, "")
	empty := filepath.Join(t.TempDir(), "empty.toml")
	require.Nil(t, os.WriteFile(empty, []byte("[oracle]\nvrfKey = \"0x01\"\n"), 0600))
	_, err = LoadConfig(empty)
	assert.NotNil(t, err)
}

func TestHealthz(t *testing.T) {
	m := NewMetrics()
	srv := httptest.NewServer(m.Handler(time.Minute))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	m.markPoll()
	resp, err = http.Get(srv.URL + "/healthz")
	require.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
