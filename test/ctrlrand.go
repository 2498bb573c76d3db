package test

import (
	"flag"
	"fmt"
	"strconv"
	"sync"
	"time"
)

func init() {
	flag.Var(&randPreference, "test.randSeed",
		"Specify a random seed for tests, or 'launchClock' to use"+
			" the same arbitrary value in each test invocation")
}

var singleRandSafety = &onePerTestRandSafety{loggerSet: make(map[NamedLogger]bool)}

type NamedLogger interface {
	Log(args ...interface{})
	Name() string
}

type randMode int

const (
	randPrefInvokeClock randMode = iota
	randPrefLaunchClock
	randPrefExplicit
)

// ControlledRand is the randomness source for tests that sample random
// inputs. The seed is logged on creation so a failing run can be replayed
// with -test.randSeed.
type ControlledRand struct {
	*syncRand
}

func NewControlledRand(t NamedLogger) *ControlledRand {
	singleRandSafety.assertFirstRand(t)

	var newSeed int64
	if randPreference.mode == randPrefInvokeClock {
		newSeed = time.Now().UTC().UnixNano()
	} else {
		newSeed = randPreference.seed
	}
	t.Log(fmt.Sprintf("random seed %v (%s)", newSeed, t.Name()))

	return &ControlledRand{newSyncRand(newSeed)}
}

type randomPreference struct {
	mode randMode // default value is randPrefInvokeClock
	seed int64    // applicable only in mode != randPrefInvokeClock
}

var randPreference randomPreference

func (i *randomPreference) String() string {
	var preference string
	switch i.mode {
	case randPrefInvokeClock:
		preference = "clock at invocation (default)"
	case randPrefLaunchClock:
		preference = fmt.Sprintf("launchClock: %v", i.seed)
	case randPrefExplicit:
		preference = fmt.Sprintf("explicit seed: %v", i.seed)
	}
	return preference
}

func (i *randomPreference) Set(value string) error {
	if value == "launchClock" {
		i.mode = randPrefLaunchClock
		i.seed = time.Now().UTC().UnixNano()
		return nil
	}
	i.mode = randPrefExplicit
	v, err := strconv.ParseInt(value, 0, 64)
	i.seed = v
	return err
}

type onePerTestRandSafety struct {
	sync.Mutex
	loggerSet map[NamedLogger]bool
}

func (ris *onePerTestRandSafety) assertFirstRand(t NamedLogger) {
	ris.Lock()
	defer ris.Unlock()

	if ris.loggerSet[t] {
		panic("ControlledRand should be instantiated at most once in each test")
	}
	ris.loggerSet[t] = true
}
