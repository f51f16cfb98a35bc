package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestLoggerUsesRequestID(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "rid-42")
	New(ctx).Error("inquiry.notify", errors.New("smtp down"))

	assert.Equal(t, "[error] request_id=rid-42 operation=inquiry.notify error=smtp down\n", buf.String())
}

func TestLoggerUnknownRequestID(t *testing.T) {
	buf := captureLog(t)

	New(context.Background()).Warnf("auth.login", "user=%s", "admin")

	assert.Equal(t, "[warn] request_id=unknown operation=auth.login user=admin\n", buf.String())
	assert.Equal(t, "", RequestID(context.Background()))
}
