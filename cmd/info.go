package cmd

import (
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"
)

// defaultWorkers returns the number of physical cores, or the logical CPU
// count when the host does not report cores.
func defaultWorkers() int {
	cores, err := cpu.Counts(false)
	if err != nil || cores <= 0 {
		logger.Debugf("physical core count unavailable (%v), using %d logical CPUs", err, runtime.NumCPU())
		return runtime.NumCPU()
	}
	return cores
}

// HostInfo prints the CPU and memory details used to size the worker pool.
func HostInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	model := "unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	} else if err != nil {
		logger.Warningf("could not read cpu info: %v", err)
	}
	table.Append([]string{"CPU model", model})

	logical, err := cpu.Counts(true)
	if err != nil {
		logical = runtime.NumCPU()
	}
	table.Append([]string{"Logical CPUs", fmt.Sprintf("%d", logical)})
	table.Append([]string{"Default workers", fmt.Sprintf("%d", defaultWorkers())})

	if vm, err := mem.VirtualMemory(); err == nil {
		table.Append([]string{"Total memory", formatBytes(vm.Total)})
		table.Append([]string{"Available memory", formatBytes(vm.Available)})
		table.Append([]string{"Memory used", fmt.Sprintf("%02.1f %%", vm.UsedPercent)})
	} else {
		logger.Warningf("could not read memory info: %v", err)
	}
	table.Append([]string{"GOMAXPROCS", fmt.Sprintf("%d", runtime.GOMAXPROCS(0))})

	table.Render()
	return nil
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
