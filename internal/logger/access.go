package logger

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

const (
	accessLogMaxAge       = 7 * 24 * time.Hour
	accessLogRotationTime = 24 * time.Hour
)

// NewAccessLogWriter returns the writer for HTTP access logs. Files are split
// daily as path.YYYYMMDD with path linked to the newest one. An empty path
// writes to stdout.
func NewAccessLogWriter(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(accessLogMaxAge),
		rotatelogs.WithRotationTime(accessLogRotationTime),
	)
}
