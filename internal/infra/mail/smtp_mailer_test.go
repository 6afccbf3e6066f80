package mail

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, addr string, timeout time.Duration) *smtpMailer {
	t.Helper()

	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return &smtpMailer{
		host:    host,
		port:    port,
		from:    "no-reply@voyago.local",
		timeout: timeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSMTPMailer_StalledServerTimesOut(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	// Accept the connection but never send the SMTP greeting.
	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })
	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr != nil {
			return
		}
		defer conn.Close()
		<-stop
	}()

	mailer := newTestMailer(t, listener.Addr().String(), 100*time.Millisecond)

	start := time.Now()
	err = mailer.Send(context.Background(), "user@example.com", "Hello", "body")
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestSMTPMailer_UnreachableHost(t *testing.T) {
	// Grab a port and release it so the dial is refused.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	mailer := newTestMailer(t, addr, 100*time.Millisecond)

	err = mailer.Send(context.Background(), "user@example.com", "Hello", "body")
	assert.Error(t, err)
}
