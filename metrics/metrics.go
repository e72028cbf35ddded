package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "postman"

var (
	// MessagesStored counts the messages indexed by the sent processors, by resulting status
	MessagesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_stored_total",
			Help:      "Number of MessageSent events stored",
		},
		[]string{"direction", "status"},
	)

	// MessageTransitions counts the status changes applied by the anchoring, claiming and persisting stages
	MessageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "message_transitions_total",
			Help:      "Number of message status transitions",
		},
		[]string{"direction", "status"},
	)

	// ClaimTxsSent counts claim submissions, first attempts and fee bumps
	ClaimTxsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claim_txs_sent_total",
			Help:      "Number of claim transactions sent",
		},
		[]string{"direction", "kind"},
	)

	// LastIndexedBlock is the next block the sent poller of a direction will read
	LastIndexedBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_indexed_block",
			Help:      "Last source chain block scanned for MessageSent events",
		},
		[]string{"direction"},
	)

	// ProcessingErrors counts failed poller iterations
	ProcessingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "processing_errors_total",
			Help:      "Number of poller iterations that returned an error",
		},
		[]string{"direction", "stage"},
	)

	// MessagesDeleted counts the rows removed by the retention sweep
	MessagesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_deleted_total",
			Help:      "Number of terminal messages removed by the retention sweep",
		},
	)
)

const (
	ClaimKindFirst   = "first"
	ClaimKindFeeBump = "fee_bump"
)
