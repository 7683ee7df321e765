package logger

type nopLogger struct{}

// NewNop возвращает логгер, который ничего не пишет. Удобен в тестах и фоновых задачах без логов.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, ...Field) {}
func (nopLogger) Warn(string, ...Field) {}
func (nopLogger) Error(string, ...Field) {}

func (nopLogger) With(...Field) Logger {
	return nopLogger{}
}

var _ Logger = nopLogger{}
