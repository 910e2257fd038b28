package cli

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate progress indicator while a headless
// command waits on the network or the report delay.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner starts a spinner with description. A nil writer uses stderr.
func NewSpinner(w io.Writer, description string) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
	_ = bar.RenderBlank()
	return &Spinner{bar: bar}
}

// Step advances the animation.
func (s *Spinner) Step() {
	_ = s.bar.Add(1)
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	_ = s.bar.Finish()
}

// Wait animates the spinner while fn runs, then clears it.
func (s *Spinner) Wait(fn func() error) error {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Step()
			}
		}
	}()

	err := fn()
	close(done)
	wg.Wait()
	s.Stop()
	return err
}
