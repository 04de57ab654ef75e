package cmd

import "time"

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RedisAddr          string
	RedisPassword      string
	PaymentTimeout     time.Duration
	PaymentApproveRate float64
	StaleOrderMaxAge   time.Duration
}
