package backup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/pkg"
)

const (
	DefaultSocketFileName = "liftlog-backup.sock"

	countKey    = "workouts-count"
	durationKey = "duration"
)

var ErrInvalidReport = errors.New("invalid backup report")

// Report is what the backup cmd sends to the main service once it's done.
type Report struct {
	WorkoutsCount int
	Duration      time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("%s::%d||%s::%f", countKey, r.WorkoutsCount, durationKey, r.Duration.Seconds())
}

// ParseReport reads a "workouts-count::N||duration::S" message.
func ParseReport(message string) (Report, error) {
	msgParts := strings.Split(strings.TrimSpace(message), "||")
	if len(msgParts) != 2 {
		return Report{}, fmt.Errorf("%w: %s", ErrInvalidReport, message)
	}

	countValue, err := reportValue(msgParts[0], countKey)
	if err != nil {
		return Report{}, err
	}
	count, err := strconv.Atoi(countValue)
	if err != nil || count < 0 {
		return Report{}, fmt.Errorf("%w: workouts count %q", ErrInvalidReport, countValue)
	}

	durationValue, err := reportValue(msgParts[1], durationKey)
	if err != nil {
		return Report{}, err
	}
	durationInSec, err := strconv.ParseFloat(durationValue, 64)
	if err != nil || durationInSec < 0 {
		return Report{}, fmt.Errorf("%w: duration %q", ErrInvalidReport, durationValue)
	}

	return Report{
		WorkoutsCount: count,
		Duration:      time.Duration(durationInSec * float64(time.Second)),
	}, nil
}

func reportValue(part, key string) (string, error) {
	keyValue := strings.Split(part, "::")
	if len(keyValue) != 2 || keyValue[0] != key {
		return "", fmt.Errorf("%w: expected %s, got %q", ErrInvalidReport, key, part)
	}
	return keyValue[1], nil
}

// UnixSocketListenerSetup accepts backup reports over a unix socket and records them in metrics,
// so the backup cmd can run from cron without a push gateway.
func UnixSocketListenerSetup(
	ctx context.Context,
	socketAddrDir, socketFileName string,
	metricsManager *metrics.Manager,
) (net.Addr, error) {
	socket := filepath.Join(socketAddrDir, socketFileName)

	// leftover from a previous run
	if exists, _ := pkg.PathExists(socket, false); exists {
		if err := os.Remove(socket); err != nil {
			return nil, fmt.Errorf("remove stale socket %s: %w", socket, err)
		}
	}

	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("binding to unix socket %s: %w", socket, err)
	}

	if err := os.Chmod(socket, os.ModeSocket|0666); err != nil {
		_ = listener.Close()
		return nil, err
	}

	go func() {
		<-ctx.Done()
		log.Debugln("backup unix socket listener context done, closing listener")
		_ = listener.Close()
	}()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if ctx.Err() == nil {
					log.Errorf("backup unix socket listener conn accept: %s", err)
				}
				return
			}
			log.Debugf("backup unix socket got new conn: %s", conn.RemoteAddr().String())

			// a single report is tiny, anything slower than this is a stuck client
			if err := conn.SetDeadline(time.Now().Add(5 * time.Minute)); err != nil {
				log.Errorf("failed to set conn timeout: %s", err)
				_ = conn.Close()
				continue
			}

			go handleReportConn(conn, metricsManager)
		}
	}()

	return listener.Addr(), nil
}

func handleReportConn(conn net.Conn, metricsManager *metrics.Manager) {
	defer func() { _ = conn.Close() }()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		log.Errorf("backup conn, read: %s", err)
		return
	}

	messageReceived := pkg.BytesToString(buf[:n])
	log.Infof("backup unix socket received: %s", messageReceived)

	report, err := ParseReport(messageReceived)
	if err != nil {
		log.Errorf("backup conn: %s", err)
		if _, err := conn.Write([]byte("error")); err != nil {
			log.Errorf("backup conn, send response: %s", err)
		}
		return
	}

	metricsManager.HistBackupDuration.Observe(report.Duration.Seconds())
	metricsManager.CounterWorkoutsBackedUp.Add(float64(report.WorkoutsCount))

	if _, err := conn.Write([]byte("ok")); err != nil {
		log.Errorf("backup conn, send response: %s", err)
	}
}

// SendReport delivers the report to a running service listening on socketPath.
func SendReport(socketPath string, report Report, timeout time.Duration) error {
	conn, err := net.DialTimeout("unix", socketPath, timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", socketPath, err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	if _, err := conn.Write([]byte(report.String())); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp := pkg.BytesToString(buf[:n]); resp != "ok" {
		return fmt.Errorf("service rejected report: %s", resp)
	}

	return nil
}
