// Package jobs provides scheduled background tasks for the storefront.
//
// It implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel pending orders abandoned
// by an interrupted checkout and return their reserved stock.
package jobs
