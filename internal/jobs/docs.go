// Package jobs provides scheduled background tasks for the reporting
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. WeeklyReportJob - Runs on a configurable schedule (Monday 08:00 by
// default) to aggregate the trailing week of sales and dispatch the report
// to the approvers.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sendWeeklyReportHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A NoOp run (empty window) is logged at info level; it is an expected
// business scenario, not a fault. An aborted dispatch is logged at error
// level because part of the recipient list may already have been notified.
package jobs
