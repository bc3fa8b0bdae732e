package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/celestine-lau/enactus-app/internal/testutils"
)

// TestMain ensures the shared Docker container is cleaned up after the
// repository tests, even when the run is interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("repository tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
