package core

var LoggerFromEnv = loggerFromEnv //nolint:gochecknoglobals // test hook
