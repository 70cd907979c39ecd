package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-linalg/linalg"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show executors, configuration and CPU features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "GOOS/GOARCH:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "GOMAXPROCS:       %d\n", runtime.GOMAXPROCS(0))
		fmt.Fprintf(w, "Cache line:       %d bytes\n", unsafe.Sizeof(cpu.CacheLinePad{}))
		fmt.Fprintf(w, "CPU features:     %s\n", strings.Join(cpuFeatures(), " "))
		fmt.Fprintf(w, "%s:  %q\n", linalg.EnvExecutor, os.Getenv(linalg.EnvExecutor))
		fmt.Fprintf(w, "%s:   %q\n", linalg.EnvWorkers, os.Getenv(linalg.EnvWorkers))
		fmt.Fprintf(w, "Default executor: %s\n", linalg.Default().Name())
		fmt.Fprintf(w, "Executors:        %s\n", strings.Join(executorNames, ", "))
		return nil
	},
}

// cpuFeatures lists the vector extensions relevant to BLAS-style kernels.
func cpuFeatures() []string {
	var feats []string
	add := func(name string, ok bool) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.1", cpu.X86.HasSSE41)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("fma", cpu.X86.HasFMA)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("fphp", cpu.ARM64.HasFPHP)
		add("sve", cpu.ARM64.HasSVE)
		add("sve2", cpu.ARM64.HasSVE2)
	}
	if len(feats) == 0 {
		return []string{"none"}
	}
	return feats
}
