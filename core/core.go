/*
ragc-go - top-level emulator loop: cycle-debt timing against wall-clock
time, running on its own goroutine.

	Copyright (c) 2024, Richard Cornwell

	Permission is hereby granted, free of charge, to any person obtaining a
	copy of this software and associated documentation files (the "Software"),
	to deal in the Software without restriction, including without limitation
	the rights to use, copy, modify, merge, publish, distribute, sublicense,
	and/or sell copies of the Software, and to permit persons to whom the
	Software is furnished to do so, subject to the following conditions:

	The above copyright notice and this permission notice shall be included in
	all copies or substantial portions of the Software.

	THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
	IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
	FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
	RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
	IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
	CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/
package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/apollo-agc/ragc-go/cpu"
)

// microsecondsPerCycle is the AGC's 11.7us machine cycle time.
const microsecondsPerCycle = 11.7

// idleSleep is how long Start backs off when the wall clock hasn't
// advanced far enough yet to owe the CPU any cycles.
const idleSleep = 5 * time.Millisecond

// Core drives a cpu.CPU on its own goroutine, pacing execution against
// wall-clock time rather than running flat out.
type Core struct {
	wg      sync.WaitGroup
	done    chan struct{}
	control chan bool
	running bool // the timing loop goroutine is alive
	cpuRun  bool // the CPU is stepping rather than idling

	CPU *cpu.CPU
}

func New(c *cpu.CPU) *Core {
	return &Core{CPU: c, done: make(chan struct{}), control: make(chan bool, 1), cpuRun: true}
}

// Start runs the timing loop until Stop is called. It blocks, so callers
// typically invoke it with `go`.
func (c *Core) Start() {
	c.wg.Add(1)
	defer c.wg.Done()

	c.running = true
	cycleTimer := time.Now()

	for {
		select {
		case <-c.done:
			slog.Info("shutdown AGC core")
			c.running = false
			return
		case run := <-c.control:
			c.cpuRun = run
			cycleTimer = time.Now()
			continue
		default:
		}

		if !c.cpuRun {
			time.Sleep(idleSleep)
			continue
		}

		elapsed := time.Since(cycleTimer)
		if elapsed < time.Millisecond {
			time.Sleep(idleSleep)
			continue
		}

		target := int64(float64(elapsed.Microseconds()) / microsecondsPerCycle)
		var executed int64
		for executed < target {
			executed += int64(c.CPU.Step())
		}

		cycleTimer = time.Now()
	}
}

// SendStart resumes CPU stepping.
func (c *Core) SendStart() {
	c.control <- true
}

// SendStop pauses CPU stepping without tearing down the timing loop.
func (c *Core) SendStop() {
	c.control <- false
}

// Stop signals the timing loop to exit and waits for it to finish, giving
// up after a second if it doesn't.
func (c *Core) Stop() {
	close(c.done)
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("timed out waiting for AGC core to stop")
	}
}

// Running reports whether the timing loop is currently active.
func (c *Core) Running() bool {
	return c.running
}
