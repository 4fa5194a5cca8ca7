package core

import (
	"testing"
	"time"

	"github.com/apollo-agc/ragc-go/cpu"
	"github.com/apollo-agc/ragc-go/memory"
)

type fakeIO struct{}

func (fakeIO) ReadPort(int) uint16     { return 0 }
func (fakeIO) WritePort(int, uint16)   {}
func (fakeIO) InterruptStatus() uint16 { return 0 }

func TestStartStop(t *testing.T) {
	c := New(cpu.New(memory.NewMap(fakeIO{})))

	go c.Start()
	time.Sleep(20 * time.Millisecond)
	if !c.Running() {
		t.Error("core should report running after Start")
	}
	c.Stop()
}

func TestSendStopPausesWithoutStoppingGoroutine(t *testing.T) {
	c := New(cpu.New(memory.NewMap(fakeIO{})))

	go c.Start()
	time.Sleep(20 * time.Millisecond)

	c.SendStop()
	time.Sleep(10 * time.Millisecond)
	before := c.CPU.TotalCycles
	time.Sleep(20 * time.Millisecond)
	if c.CPU.TotalCycles != before {
		t.Error("CPU should not advance while paused")
	}
	if !c.Running() {
		t.Error("timing loop goroutine should still be alive while paused")
	}

	c.SendStart()
	time.Sleep(20 * time.Millisecond)
	c.Stop()
}
