// Command mos6502 runs a raw 6502 ROM image: load it into memory, reset
// the CPU, and interpret instructions until the process is stopped.
// Opcodes this core doesn't decode are logged and skipped, not fatal (see
// cpu.Run).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dmackay/mos6502/cpu"
	"github.com/dmackay/mos6502/memory"
)

// romLoadAddr is where a raw ROM image is mapped. The reset vector at
// 0xFFFC is expected to already point somewhere inside it; this loader
// does not parse headers or relocate code.
const romLoadAddr = 0x8000

// debugLogPath is where unknown-opcode events are recorded while Run
// continues executing past them.
const debugLogPath = "debug_log.txt"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s path/to/rom\n", os.Args[0])
		os.Exit(1)
	}

	rom, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	logFile, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("opening debug log: %v", err)
	}
	defer logFile.Close()
	debugLog := log.New(logFile, "", log.LstdFlags)

	mem := memory.NewFlat()
	mem.LoadROM(romLoadAddr, rom)

	c := cpu.New(mem, cpu.DefaultClockPeriod)
	c.PowerOn()

	if err := c.Run(debugLog); err != nil {
		log.Fatalf("cpu halted: %v", err)
	}
}
