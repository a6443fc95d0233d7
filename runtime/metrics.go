// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/vechain/stakeledger/metrics"
)

var (
	metricCalls     = metrics.LazyLoadCounterVec("calls_count", []string{"method", "status"})
	metricGasBurnt  = metrics.LazyLoadHistogramVec("call_gas_tgas", []string{"method"}, metrics.BucketTgas)
	metricTransfers = metrics.LazyLoadCounterVec("transfers_count", []string{"result"})
	metricCommits   = metrics.LazyLoadCounter("commits_count")
)

func recordOutcome(method string, o *Outcome) {
	metricCalls().AddWithLabel(1, map[string]string{"method": method, "status": o.Status.String()})
	metricGasBurnt().ObserveWithLabels(int64(o.GasBurnt/1e12), map[string]string{"method": method})

	for _, t := range o.Transfers {
		result := "ok"
		if t.Failed {
			result = "failed"
		}
		metricTransfers().AddWithLabel(1, map[string]string{"result": result})
	}
}
