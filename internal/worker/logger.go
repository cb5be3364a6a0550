package worker

import "github.com/enfash/PrintSwift-sub000/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
