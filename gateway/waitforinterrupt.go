package gateway

import (
	"os"
	"os/signal"
	"syscall"
)

// WaitForInterrupt blocks until the process is asked to shut down.
func WaitForInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-ch
}
