//go:build !darwin || (darwin && !cgo)

package clipboard

import (
	"golang.design/x/clipboard"

	apperrors "github.com/dlapp/crmdeck/internal/errors"
	"github.com/dlapp/crmdeck/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Debug("Clipboard init failed: %v", err)
		return apperrors.ClipboardWriteFailed(err)
	}

	initialized = true
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}
