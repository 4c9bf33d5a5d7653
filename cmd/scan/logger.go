package main

import "go.uber.org/zap"

var extractLog = zap.NewNop()
var summaryLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	extractLog = l
	summaryLog = l
}
