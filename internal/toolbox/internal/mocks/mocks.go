package mocks

//go:generate mockgen -destination logger_mock.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/dstoolbox/internal/logging Logger
