package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost        string
	KafkaOrdersTopic string

	RedisAddr     string
	RedisPassword string

	// Timezone is the restaurant's local timezone; daily order numbers and
	// opening hours are evaluated in it.
	Timezone string

	// PreOrderTTL is how long an order may stay in created status before the
	// expiry job removes it.
	PreOrderTTL time.Duration

	// IdempotencyTTL is how long a placement idempotency key stays reserved.
	IdempotencyTTL time.Duration
}
