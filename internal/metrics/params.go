// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"strings"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/prometheus/client_golang/prometheus"
	hex "github.com/tmthrgd/go-hex"
)

var (
	networkInfoDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "network", "info"),
		"Identity of the selected network, always 1",
		[]string{"network", "magic", "port", "genesis"}, nil,
	)

	upgradeActivationDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "upgrade", "activation_height"),
		"Activation height of each network upgrade, -1 when never active",
		[]string{"network", "upgrade"}, nil,
	)

	checkpointHeightDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "checkpoint", "last_height"),
		"Height of the newest checkpoint",
		[]string{"network"}, nil,
	)

	checkpointTimeDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "checkpoint", "last_timestamp_seconds"),
		"Timestamp of the newest checkpoint block",
		[]string{"network"}, nil,
	)

	checkpointTxsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "checkpoint", "transactions_before_last"),
		"Transactions between genesis and the newest checkpoint",
		[]string{"network"}, nil,
	)

	checkpointTxRateDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "checkpoint", "estimated_transactions_per_day"),
		"Expected transactions per day after the newest checkpoint",
		[]string{"network"}, nil,
	)

	maxMoneyDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "consensus", "max_money_coins"),
		"Cap on the money supply in coins",
		[]string{"network"}, nil,
	)

	coinbaseMaturityDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "consensus", "coinbase_maturity_blocks"),
		"Blocks before a coinbase output can be spent",
		[]string{"network"}, nil,
	)
)

// ParamsCollector exports the values of one network profile.  The profile
// never changes, so every scrape reports the same values.
type ParamsCollector struct {
	params *chaincfg.Params
}

// NewParamsCollector returns a collector for params.
func NewParamsCollector(params *chaincfg.Params) *ParamsCollector {
	return &ParamsCollector{params: params}
}

// Describe implements prometheus.Collector.
func (c *ParamsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- networkInfoDesc
	ch <- upgradeActivationDesc
	ch <- checkpointHeightDesc
	ch <- checkpointTimeDesc
	ch <- checkpointTxsDesc
	ch <- checkpointTxRateDesc
	ch <- maxMoneyDesc
	ch <- coinbaseMaturityDesc
}

// Collect implements prometheus.Collector.
func (c *ParamsCollector) Collect(ch chan<- prometheus.Metric) {
	p := c.params
	network := p.Name()
	magic := p.MessageStart()
	genesis := p.GenesisHash()

	ch <- prometheus.MustNewConstMetric(networkInfoDesc, prometheus.GaugeValue, 1,
		network, hex.EncodeToString(magic[:]), p.DefaultPort(), genesis.String())

	upgrades := p.Upgrades()
	for u := chaincfg.UpgradeID(0); u < chaincfg.DefinedUpgrades; u++ {
		height := float64(upgrades.ActivationHeight(u))
		if upgrades.ActivationHeight(u) == chaincfg.NeverActive {
			height = -1
		}
		ch <- prometheus.MustNewConstMetric(upgradeActivationDesc,
			prometheus.GaugeValue, height, network, UpgradeLabel(u))
	}

	checkpoints := p.Checkpoints()
	ch <- prometheus.MustNewConstMetric(checkpointHeightDesc, prometheus.GaugeValue,
		float64(checkpoints.LastCheckpointHeight()), network)
	ch <- prometheus.MustNewConstMetric(checkpointTimeDesc, prometheus.GaugeValue,
		float64(checkpoints.LastCheckpointTime().Unix()), network)
	ch <- prometheus.MustNewConstMetric(checkpointTxsDesc, prometheus.GaugeValue,
		float64(checkpoints.TransactionsBeforeLastCheckpoint()), network)
	ch <- prometheus.MustNewConstMetric(checkpointTxRateDesc, prometheus.GaugeValue,
		float64(checkpoints.EstimatedTransactionsPerDay()), network)

	ch <- prometheus.MustNewConstMetric(maxMoneyDesc, prometheus.GaugeValue,
		p.MaxMoney().ToBTC(), network)
	ch <- prometheus.MustNewConstMetric(coinbaseMaturityDesc, prometheus.GaugeValue,
		float64(p.Consensus().CoinbaseMaturity), network)
}

// UpgradeLabel returns a lower case label value for u without spaces or
// dots, "PoS v2" becomes "pos_v2".
func UpgradeLabel(u chaincfg.UpgradeID) string {
	return labelReplacer.Replace(strings.ToLower(u.String()))
}

var labelReplacer = strings.NewReplacer(" ", "_", ".", "_")
