// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync/atomic"

// FlowState is the lifecycle of one submission flow instance.
type FlowState int32

const (
	FlowIdle FlowState = iota
	FlowSubmitting
	FlowSucceeded
	FlowFailed
)

func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowSubmitting:
		return "submitting"
	case FlowSucceeded:
		return "succeeded"
	case FlowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// flowGuard admits one submission at a time. Any state other than
// Submitting may start a new submission, so a failed flow is restartable.
type flowGuard struct {
	state atomic.Int32
}

func (g *flowGuard) current() FlowState {
	return FlowState(g.state.Load())
}

// begin moves the flow into Submitting. It returns false if a submission is
// already in flight.
func (g *flowGuard) begin() bool {
	for {
		cur := g.state.Load()
		if FlowState(cur) == FlowSubmitting {
			return false
		}
		if g.state.CompareAndSwap(cur, int32(FlowSubmitting)) {
			return true
		}
	}
}

// finish records the outcome of the submission started by begin.
func (g *flowGuard) finish(err error) {
	if err != nil {
		g.state.Store(int32(FlowFailed))
		return
	}
	g.state.Store(int32(FlowSucceeded))
}

// reset returns a flow to Idle unless a submission is in flight.
func (g *flowGuard) reset() {
	g.state.CompareAndSwap(int32(FlowFailed), int32(FlowIdle))
	g.state.CompareAndSwap(int32(FlowSucceeded), int32(FlowIdle))
}
