package config

import "time"

type Worker struct {
	RelayPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"1s"`
	RelayBatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	QueueConcurrency  int           `env:"DISPATCH_QUEUE_CONCURRENCY" envDefault:"4"`
}
