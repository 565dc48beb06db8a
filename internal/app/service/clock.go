package service

import (
	"time"

	"github.com/zulian026/TaskNest/internal/core/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used outside of tests.
var SystemClock ports.Clock = systemClock{}
