// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/33cn/chain33/common/log/log15"
	"github.com/catflip-labs/catflip/plugin/dapp/catflip/oracle"
	"github.com/spf13/cobra"
)

var mlog = log.New("module", "catflip-oracle")

var rootCmd = &cobra.Command{
	Use:   "catflip-oracle",
	Short: "VRF oracle answering pending catflip bets",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "oracle.toml", "config file")
	rootCmd.Flags().Bool("skip-key-check", false, "do not compare the vrf key with the vault oracle key")
	rootCmd.AddCommand(pubKeyCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pubKeyCmd 打印 vrf 公钥，用于 catflip init / oracle
func pubKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the oracle VRF public key in hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := oracle.LoadConfig(path)
			if err != nil {
				return err
			}
			key, err := oracle.ParseVrfKey(cfg.Oracle.VrfKey)
			if err != nil {
				return err
			}
			fmt.Println(oracle.MarshalVrfPublicKey(key))
			return nil
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	skipCheck, _ := cmd.Flags().GetBool("skip-key-check")
	cfg, err := oracle.LoadConfig(path)
	if err != nil {
		return err
	}
	vrfKey, err := oracle.ParseVrfKey(cfg.Oracle.VrfKey)
	if err != nil {
		return err
	}
	signKey, err := oracle.ParseSignKey(cfg.Oracle.SignKey)
	if err != nil {
		return err
	}
	chain, err := oracle.NewRPCChain(cfg.Chain, signKey)
	if err != nil {
		return err
	}

	var locker oracle.Locker
	if cfg.Redis.Addr != "" {
		rl := oracle.NewRedisLocker(cfg.Redis)
		defer rl.Close()
		locker = rl
	}
	var publisher oracle.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		kp := oracle.NewKafkaPublisher(cfg.Kafka)
		defer kp.Close()
		publisher = kp
	}
	metrics := oracle.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := oracle.NewFulfiller(cfg.Oracle, chain, vrfKey, locker, publisher, metrics)
	if !skipCheck {
		if err := f.CheckKey(ctx); err != nil {
			return err
		}
	}
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, 3*cfg.Oracle.PollInterval); err != nil {
				mlog.Error("metrics server", "err", err)
			}
		}()
	}
	mlog.Info("catflip oracle started", "rpc", cfg.Chain.RPCAddr, "exec", cfg.Chain.ParaName+"catflip",
		"redis", cfg.Redis.Addr != "", "kafka", len(cfg.Kafka.Brokers) > 0)
	return f.Run(ctx)
}
