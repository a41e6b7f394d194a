package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// WarningRotateEmptyQueue запрошен поворот пустой очереди, ничего не делается.
	WarningRotateEmptyQueue(k int)

	// DebugRotate поворот очереди длины length, запрошенный сдвиг k
	// сведён к фактическому shift.
	DebugRotate(k, length, shift int)
}

// Nop логгер, который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) WarningRotateEmptyQueue(int) {}

func (nopLogger) DebugRotate(int, int, int) {}
