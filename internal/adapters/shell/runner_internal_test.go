package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Warn("first"),
		log.EXPECT().Warn("second"),
		log.EXPECT().Warn(""),
		log.EXPECT().Warn("unterminated"),
	)

	w := &logWriter{logger: log, stream: domain.StreamStderr}
	_, _ = w.Write([]byte("fir"))
	_, _ = w.Write([]byte("st\r\nsecond\n\nunter"))
	_, _ = w.Write([]byte("minated"))
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestLogWriter_StreamLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockStreamLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Stream(domain.StreamStdout, "install"),
		log.EXPECT().Stream(domain.StreamStdout, "done"),
	)

	w := &logWriter{logger: log, stream: domain.StreamStdout}
	_, _ = w.Write([]byte("install\ndo"))
	_, _ = w.Write([]byte("ne"))
	assert.NoError(t, w.Close())
}
