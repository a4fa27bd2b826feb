package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

var waitGroup sync.WaitGroup

func loopGetLogger(t *testing.T, routineNum int) {
	defer waitGroup.Done()
	for i := 0; i < 1000; i++ {
		logger1 := GetLogger()
		if logger1 == nil {
			t.Errorf("GetLogger() = nil in goroutine %d, expected a non-nil logger", routineNum)
		}
	}

}
func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}

	waitGroup.Add(2)
	go loopGetLogger(t, 1)
	go loopGetLogger(t, 2)
	waitGroup.Wait()
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	if got := LevelFromEnv(zerolog.InfoLevel); got != zerolog.DebugLevel {
		t.Errorf("LevelFromEnv() = %v, expected DebugLevel", got)
	}

	t.Setenv(EnvLogLevel, "not-a-level")
	if got := LevelFromEnv(zerolog.InfoLevel); got != zerolog.InfoLevel {
		t.Errorf("LevelFromEnv() with garbage = %v, expected the fallback", got)
	}
}
