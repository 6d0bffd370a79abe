package infra

import (
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/jarcoal/httpmock"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

func newTestAnimals(t *testing.T, key string) (*AnimalsGateway, *httpmock.MockTransport) {
	t.Helper()
	g := NewAnimalsGateway("", key, nopLogger())
	mock := httpmock.NewMockTransport()
	g.http.SetTransport(mock)
	return g, mock
}

func newTestTrefle(t *testing.T, token string) (*TrefleGateway, *httpmock.MockTransport) {
	t.Helper()
	g := NewTrefleGateway("", token, nopLogger())
	mock := httpmock.NewMockTransport()
	g.http.SetTransport(mock)
	return g, mock
}
