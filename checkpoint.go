package sememeval

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Checkpoint is a progress report emitted during a run.
type Checkpoint struct {
	Done    int           `json:"done"`
	Total   int           `json:"total"`
	Elapsed time.Duration `json:"elapsed_ns"`
	// Host is nil unless host statistics were requested and available.
	Host *HostStats `json:"host,omitempty"`
}

// HostStats is a snapshot of host resource usage.
type HostStats struct {
	CPUPercent     float64 `json:"cpu_percent"`
	MemUsedPercent float64 `json:"mem_used_percent"`
	MemUsedBytes   uint64  `json:"mem_used_bytes"`
}

// CheckpointFunc receives progress checkpoints. Calls are serialized.
type CheckpointFunc func(Checkpoint)

// readHostStats samples CPU utilization since the previous call and current
// memory usage. It returns nil when the platform does not expose them.
func readHostStats(ctx context.Context) *HostStats {
	pct, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil || len(pct) == 0 {
		return nil
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil
	}
	return &HostStats{
		CPUPercent:     pct[0],
		MemUsedPercent: vm.UsedPercent,
		MemUsedBytes:   vm.Used,
	}
}
