// Copyright (C) 2024-2025, Metallicus, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MetalBlockchain/rpiparams/chaincfg"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const regTestGenesis = "495c37dd20fb869910ca66826a95167e15a629181b6009afd05c1f1b4e393397"

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestServerParams(t *testing.T) {
	s := newParamsServer(&regTestParams)

	rec := get(t, s, "/api/params")
	require.Equal(t, http.StatusOK, rec.Code)

	var view paramsView
	decode(t, rec, &view)
	assert.Equal(t, "regtest", view.Network)
	assert.Equal(t, "ffafb7df", view.Magic)
	assert.Equal(t, "18004", view.DefaultPort)
	assert.Equal(t, "18006", view.APIPort)
	assert.Equal(t, regTestGenesis, view.GenesisHash)
	assert.Equal(t, int32(450), view.LastPoWBlock)
	assert.Equal(t, uint8(111), view.Prefixes.PubKeyHash)
	assert.Equal(t, "045f1cf6", view.Prefixes.ExtPublicKey)
	assert.Equal(t, "pregtestsapling", view.SaplingHRPs[chaincfg.SaplingPaymentAddress.String()])
	assert.True(t, view.Flags.MineBlocksOnDemand)
	assert.False(t, view.Flags.RequireStandard)
}

func TestServerGenesis(t *testing.T) {
	s := newParamsServer(&regTestParams)

	rec := get(t, s, "/api/genesis")
	require.Equal(t, http.StatusOK, rec.Code)

	var view genesisView
	decode(t, rec, &view)
	assert.Equal(t, regTestGenesis, view.Hash)
	assert.Equal(t, uint32(3), view.Nonce)
	assert.Equal(t, uint32(0x207fffff), view.Bits)
	assert.Equal(t, int64(1411111111), view.Time)
}

func TestServerCheckpoints(t *testing.T) {
	s := newParamsServer(&regTestParams)

	rec := get(t, s, "/api/checkpoints")
	require.Equal(t, http.StatusOK, rec.Code)
	var all checkpointsView
	decode(t, rec, &all)
	require.Len(t, all.Checkpoints, 1)
	assert.Equal(t, regTestGenesis, all.Checkpoints[0].Hash)
	assert.Equal(t, uint64(100), all.EstimatedTransactionsPerDay)

	rec = get(t, s, "/api/checkpoints/0")
	require.Equal(t, http.StatusOK, rec.Code)
	var cp checkpointView
	decode(t, rec, &cp)
	assert.Equal(t, checkpointView{Height: 0, Hash: regTestGenesis}, cp)

	rec = get(t, s, "/api/checkpoints/5")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Non numeric heights do not match the route.
	rec = get(t, s, "/api/checkpoints/tip")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, s, "/api/checkpoints/99999999999")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerUpgrades(t *testing.T) {
	s := newParamsServer(&regTestParams)

	rec := get(t, s, "/api/upgrades")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []upgradeView
	decode(t, rec, &all)
	require.Len(t, all, int(chaincfg.DefinedUpgrades))
	for _, u := range all {
		assert.Nil(t, u.Active, u.Name)
	}
	assert.Equal(t, int32(-1), all[chaincfg.UpgradeV4_0].ActivationHeight)

	tests := []struct {
		target string
		height int32
		active bool
	}{
		{"/api/upgrades/pos?height=450", 451, false},
		{"/api/upgrades/pos?height=451", 451, true},
		{"/api/upgrades/pos_v2?height=749", 750, false},
		{"/api/upgrades/zerocoin_v1?height=750", 750, true},
		{"/api/upgrades/BIP65?height=1000", -1, false},
	}
	for _, test := range tests {
		rec := get(t, s, test.target)
		require.Equal(t, http.StatusOK, rec.Code, test.target)

		var view upgradeView
		decode(t, rec, &view)
		assert.Equal(t, test.height, view.ActivationHeight, test.target)
		require.NotNil(t, view.Active, test.target)
		assert.Equal(t, test.active, *view.Active, test.target)
	}

	rec = get(t, s, "/api/upgrades/sapling")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, s, "/api/upgrades?height=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServerMetrics(t *testing.T) {
	s := newParamsServer(&regTestParams)

	// Drive one API request through so the HTTP counters have a sample.
	require.Equal(t, http.StatusOK, get(t, s, "/api/params").Code)

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `rpiparams_network_info{genesis="`+regTestGenesis+`",magic="ffafb7df",network="regtest",port="18004"} 1`)
	assert.Contains(t, body, `rpiparams_upgrade_activation_height{network="regtest",upgrade="pos"} 451`)
	assert.Contains(t, body, `rpiparams_server_http_requests_total{method="GET",path="/api/params",status="200"}`)
}

func TestServerRun(t *testing.T) {
	s := newParamsServer(&unitTestParams)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx, "127.0.0.1:0")
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerRunListenError(t *testing.T) {
	s := newParamsServer(&unitTestParams)

	err := s.run(context.Background(), "127.0.0.1:-1")
	require.Error(t, err)
}
