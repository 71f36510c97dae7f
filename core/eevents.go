package core

import (
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/deviationtrack/canvaseditor/util/evreg"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
)

// Editor events.
type EEvents struct {
	reg evreg.Register
}

func NewEEvents() *EEvents {
	return &EEvents{}
}

func (eevs *EEvents) emit(eid EEventId, ev any) int {
	return eevs.reg.RunCallbacks(int(eid), ev)
}

func (eevs *EEvents) Register(eid EEventId, fn func(any)) *evreg.Regist {
	return eevs.reg.Add(int(eid), fn)
}

//----------

type EEventId int

const (
	ChangeEEventId EEventId = iota
	ModeEEventId
	CursorEEventId
	SnapshotEEventId
	DroppedInputEEventId
)

// Model or rich text changed; views should redraw.
type ChangeEEvent struct{}

type ModeEEvent struct {
	From, To Mode
}

type CursorEEvent struct {
	Cursor event.Cursor
}

type SnapshotEEvent struct {
	Snapshot *snapshot.Snapshot
}

// Image payload ignored.
type DroppedInputEEvent struct {
	Source string // upload, paste, inbox
	Err    error
}

