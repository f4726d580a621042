//go:build linux && !tinygo

package hal

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var sysRoot = "/"

// readMaxCPUHz reports the highest clock cpu0 may run at, or 0.
func readMaxCPUHz(root string) uint32 {
	b, err := os.ReadFile(filepath.Join(root, "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"))
	if err != nil {
		return 0
	}
	hz, _ := parseKHz(string(b))
	return hz
}

func parseKHz(s string) (uint32, bool) {
	khz, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || khz > 0xFFFFFFFF/1000 {
		return 0, false
	}
	return uint32(khz * 1000), true
}

// readModel returns the device-tree model string, e.g. "Raspberry Pi 4 Model B".
func readModel(root string) (string, bool) {
	b, err := os.ReadFile(filepath.Join(root, "proc/device-tree/model"))
	if err != nil {
		return "", false
	}
	m := strings.TrimSpace(strings.TrimRight(string(b), "\x00"))
	return m, m != ""
}
