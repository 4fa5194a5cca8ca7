package cpu

import (
	"testing"

	"github.com/apollo-agc/ragc-go/decoder"
	"github.com/apollo-agc/ragc-go/memory"
)

type fakeIO struct {
	ports    map[int]uint16
	irqState uint16
}

func newFakeIO() *fakeIO {
	return &fakeIO{ports: map[int]uint16{}}
}

func (f *fakeIO) ReadPort(idx int) uint16         { return f.ports[idx] }
func (f *fakeIO) WritePort(idx int, value uint16) { f.ports[idx] = value }
func (f *fakeIO) InterruptStatus() uint16         { return f.irqState }

func newTestCPU() *CPU {
	m := memory.NewMap(newFakeIO())
	return New(m)
}

func TestCCSPositive(t *testing.T) {
	c := newTestCPU()
	c.WriteS15(0o100, 5)
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ccs(inst)
	if got := c.ReadS15(regA); got != 4 {
		t.Errorf("A = %o, want 4", got)
	}
	if got := c.Read(regZ); got != pc {
		t.Errorf("PC moved on positive case: got %o want %o", got, pc)
	}
}

func TestCCSPlusZeroSkipsOne(t *testing.T) {
	c := newTestCPU()
	c.WriteS15(0o100, 0)
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ccs(inst)
	if got := c.Read(regZ); got != pc+1 {
		t.Errorf("PC = %o, want %o", got, pc+1)
	}
}

func TestCCSMinusZeroSkipsThree(t *testing.T) {
	c := newTestCPU()
	c.WriteS15(0o100, 0o77777)
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ccs(inst)
	if got := c.Read(regZ); got != pc+3 {
		t.Errorf("PC = %o, want %o", got, pc+3)
	}
}

func TestCCSNegativeSkipsTwo(t *testing.T) {
	c := newTestCPU()
	c.WriteS15(0o100, 0o77775) // -2
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ccs(inst)
	if got := c.ReadS15(regA); got != 1 {
		t.Errorf("A = %o, want 1 (magnitude 2 minus 1)", got)
	}
	if got := c.Read(regZ); got != pc+2 {
		t.Errorf("PC = %o, want %o", got, pc+2)
	}
}

func TestAugMovesAwayFromZero(t *testing.T) {
	c := newTestCPU()
	c.WriteS16(0o100, 0)
	inst := &decoder.Instruction{Data: 0o100}
	c.aug(inst)
	if got := c.ReadS16(0o100); got != 1 {
		t.Errorf("aug(+0) = %o, want 1", got)
	}

	c.WriteS16(0o100, 0o177777)
	c.aug(inst)
	if got := c.ReadS16(0o100); got != 0o177776 {
		t.Errorf("aug(-0) = %o, want 0o177776", got)
	}
}

func TestDASAddsAndClearsAccumulator(t *testing.T) {
	c := newTestCPU()
	c.WriteDP(regA, 5)
	inst := &decoder.Instruction{Data: 0o103} // base = 0o103-1 = 0o102
	c.WriteDP(0o102, 10)
	c.das(inst)
	if got := c.ReadDP(0o102); got != 15 {
		t.Errorf("sum = %o, want 15", got)
	}
	if got := c.ReadS15(regA); got != 0 {
		t.Errorf("A not cleared: %o", got)
	}
	if got := c.ReadS15(regL); got != 0 {
		t.Errorf("L not cleared: %o", got)
	}
}

func TestDXCHSwapsDoublePrecision(t *testing.T) {
	c := newTestCPU()
	c.WriteS16(0o102, 0o111)
	c.WriteS16(0o103, 0o222)
	c.WriteS16(regA, 0o333)
	c.WriteS16(regL, 0o444)

	inst := &decoder.Instruction{Data: 0o103}
	c.dxch(inst)

	if got := c.ReadS16(regA); got != 0o111 {
		t.Errorf("A = %o, want 0o111", got)
	}
	if got := c.ReadS16(regL); got != 0o222 {
		t.Errorf("L = %o, want 0o222", got)
	}
	if got := c.ReadS16(0o102); got != 0o333 {
		t.Errorf("mem[base] = %o, want 0o333", got)
	}
	if got := c.ReadS16(0o103); got != 0o444 {
		t.Errorf("mem[base+1] = %o, want 0o444", got)
	}
}

func TestTSNoOverflowStoresPlain(t *testing.T) {
	c := newTestCPU()
	c.Write(regA, 0o2222) // no overflow bits set
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ts(inst)
	if got := c.ReadS15(0o100); got != 0o2222 {
		t.Errorf("stored = %o, want 0o2222", got)
	}
	if got := c.Read(regZ); got != pc {
		t.Errorf("PC moved without overflow: %o", got)
	}
}

func TestTSPositiveOverflowSetsUnitAndSkips(t *testing.T) {
	c := newTestCPU()
	c.Write(regA, 0o040000) // bits 15:14 = 01 -> positive overflow
	pc := c.Read(regZ)
	inst := &decoder.Instruction{Data: 0o100}
	c.ts(inst)
	if got := c.ReadS15(regA); got != 1 {
		t.Errorf("A = %o, want 1", got)
	}
	if got := c.Read(regZ); got != pc+1 {
		t.Errorf("PC = %o, want %o", got, pc+1)
	}
}

func TestIndexSetsIdxValForNextFetch(t *testing.T) {
	c := newTestCPU()
	c.WriteS15(0o100, 5)
	inst := &decoder.Instruction{Data: 0o100}
	c.index(inst)
	if c.IdxVal != 5 {
		t.Errorf("IdxVal = %o, want 5", c.IdxVal)
	}
}

func TestMaskAndsAccumulator(t *testing.T) {
	c := newTestCPU()
	c.WriteS16(regA, 0o077770)
	c.WriteS16(0o100, 0o000017)
	inst := &decoder.Instruction{Data: 0o100}
	c.mask(inst)
	if got := c.ReadS16(regA); got != 0o000010 {
		t.Errorf("A = %o, want 0o000010", got)
	}
}

func TestHandleGOJRestartsAndDisablesInterrupts(t *testing.T) {
	c := newTestCPU()
	c.GInt = true
	c.IsIRupt = true
	c.tcCount = 3
	c.nonTCCount = 7

	c.handleGOJ()

	if c.GInt {
		t.Error("GInt should be disabled after GOJ")
	}
	if c.IsIRupt {
		t.Error("IsIRupt should be cleared after GOJ")
	}
	if c.tcCount != 0 || c.nonTCCount != 0 {
		t.Error("tc/non-tc counters should reset on GOJ")
	}
	if got := c.Read(regZ); got != 0x800 {
		t.Errorf("PC after restart = %o, want 0x800", got)
	}
}

func TestStepUnprogrammedPopsQueueAndCostsCycles(t *testing.T) {
	c := newTestCPU()
	c.pushUnprog(stepPINC)
	cycles := c.Step()
	if cycles != 1 {
		t.Errorf("PINC cost = %d, want 1", cycles)
	}
	if c.unLen != 0 {
		t.Errorf("queue not drained: len=%d", c.unLen)
	}
}

func TestExtendSetsECFlagThroughDispatch(t *testing.T) {
	c := newTestCPU()
	inst := &decoder.Instruction{Mnem: decoder.EXTEND}
	c.ECFlag = false
	c.execute(inst)
	if !c.ECFlag {
		t.Error("EXTEND should set ECFlag")
	}
}

func TestTCIncrementsTCCountAndResetsNonTC(t *testing.T) {
	c := newTestCPU()
	c.nonTCCount = 4
	inst := &decoder.Instruction{Mnem: decoder.TC, Data: 0o100}
	c.execute(inst)
	if c.tcCount != 1 {
		t.Errorf("tcCount = %d, want 1", c.tcCount)
	}
	if c.nonTCCount != 0 {
		t.Errorf("nonTCCount = %d, want 0", c.nonTCCount)
	}
}

func TestUpdateCyclesAdvancesTimersOnTick(t *testing.T) {
	c := newTestCPU()
	before := c.Mem.Timers.GetCounterValue()

	ticks := int(timerTickUnits)/12 + 1
	c.updateCycles(uint16(ticks))

	if got := c.Mem.Timers.GetCounterValue(); got != before+1 {
		t.Errorf("master counter = %d, want %d", got, before+1)
	}
}

func TestUpdateCyclesDeliversTimer4InterruptAtRollover(t *testing.T) {
	c := newTestCPU()
	c.Mem.Timers.Write(memory.Timer4Address, 0o37777)

	ticks := int(timerTickUnits)/12 + 1
	c.updateCycles(uint16(ticks))

	if c.Rupt&(1<<memory.InterruptTimer4) == 0 {
		t.Error("expected INTERRUPT_TIMER4 to be requested after timer4 rollover")
	}
	if got := c.Mem.Timers.Read(memory.Timer4Address); got != 0 {
		t.Errorf("timer4 = %o, want reset to 0 after rollover", got)
	}
}
