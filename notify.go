package moneybook

import "log"

// Notifier receives the user-facing outcome of each operation, one
// message per success or failure.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Println(msg) }
func (LogNotifier) Error(msg string)   { log.Println("error:", msg) }
