// Package sysmon provides system-wide CPU and memory usage sampling for the
// dashboard footer.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/aerolab/foilbench/internal/format"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
	MemUsedBytes uint64
}

// String renders the snapshot as a compact single-line status.
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%%  MEM %.1f%% (%s)",
		s.CPUPercent, s.MemPercent, format.FormatBytes(s.MemUsedBytes))
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsedBytes = vmem.Used
	}
	return s
}
