package recording

import (
	"sync"

	"github.com/vehsim/vehsig/port"
)

// InjectionTableName is the table injections are recorded into.
const InjectionTableName = "injections"

// An InjectionEntry is one recorded harness injection.
type InjectionEntry struct {
	Seq   int
	Port  string
	Kind  string
	Value uint64
}

// An InjectionLogger is a port hook that records every value the
// harness injects.
type InjectionLogger struct {
	recorder Recorder

	lock sync.Mutex
	seq  int
}

// NewInjectionLogger creates an InjectionLogger that writes into the
// given recorder. The injection table is created immediately.
func NewInjectionLogger(recorder Recorder) *InjectionLogger {
	l := &InjectionLogger{
		recorder: recorder,
	}

	recorder.CreateTable(InjectionTableName, InjectionEntry{})

	return l
}

// Func records an injection when a hooked port fires.
func (l *InjectionLogger) Func(ctx port.HookCtx) {
	if ctx.Pos != port.HookPosInject {
		return
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	entry := InjectionEntry{
		Seq:   l.seq,
		Port:  ctx.Port.Name(),
		Kind:  ctx.Port.Kind().String(),
		Value: ctx.Value,
	}
	l.seq++

	l.recorder.InsertData(InjectionTableName, entry)
}
