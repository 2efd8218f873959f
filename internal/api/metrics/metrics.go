// Package metrics defines all custom Prometheus metrics for the news API.
// It is the single source of truth for metric names, labels, and help
// strings; everything registers with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news"

// AuthAttemptsTotal counts registration and authentication attempts.
// Labels:
//   - op: "register" or "authenticate"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and authentication attempts.",
	},
	[]string{"op", "result"},
)

// ArticleOpsTotal counts successful article mutations.
// Label:
//   - op: "create", "update" or "delete"
var ArticleOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_operations_total",
		Help:      "Total number of successful article mutations, by operation.",
	},
	[]string{"op"},
)

// ArticleSearchesTotal counts article query requests.
// Label:
//   - kind: "author", "period" or "keyword"
var ArticleSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "article_searches_total",
		Help:      "Total number of article queries served, by search kind.",
	},
	[]string{"kind"},
)
