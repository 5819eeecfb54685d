package session

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultWelcome is shown when no welcome file can be read.
const DefaultWelcome = "Press enter."

// LoadWelcome reads the welcome text from path, falling back to DefaultWelcome.
func LoadWelcome(path string, log *zap.Logger) string {
	if path == "" {
		return DefaultWelcome
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if log != nil {
			log.Warn("welcome message unavailable", zap.Error(errors.Wrap(err, "read welcome file")))
		}
		return DefaultWelcome
	}
	msg := strings.TrimRight(string(data), "\r\n")
	if msg == "" {
		return DefaultWelcome
	}
	return msg
}
