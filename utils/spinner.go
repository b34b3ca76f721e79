package utils

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Spinner is a process indicator for the stages which cannot report progress.
type Spinner struct {
	w        io.Writer
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSpinner instantiates a new Spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{})
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprintf(s.w, "\r%s%s %c%s\n", message, SuccessColor, '✓', DefaultColor)
					return
				default:
					fmt.Fprintf(s.w, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits for the last frame to be written.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	s.stopChan = nil
}
