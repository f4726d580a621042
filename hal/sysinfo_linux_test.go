//go:build linux && !tinygo

package hal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseKHz(t *testing.T) {
	for _, c := range []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"1800000\n", 1_800_000_000, true},
		{"240000", 240_000_000, true},
		{"garbage", 0, false},
		{"99999999", 0, false},
	} {
		got, ok := parseKHz(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("parseKHz(%q) = %d,%v want %d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestReadSysInfo(t *testing.T) {
	root := t.TempDir()
	if hz := readMaxCPUHz(root); hz != 0 {
		t.Fatalf("missing cpufreq should read 0, got %d", hz)
	}
	if _, ok := readModel(root); ok {
		t.Fatalf("missing model should not be ok")
	}

	writeFile(t, root, "sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq", "1500000\n")
	writeFile(t, root, "proc/device-tree/model", "Raspberry Pi 4 Model B Rev 1.4\x00")

	if hz := readMaxCPUHz(root); hz != 1_500_000_000 {
		t.Errorf("readMaxCPUHz = %d", hz)
	}
	if m, ok := readModel(root); !ok || m != "Raspberry Pi 4 Model B Rev 1.4" {
		t.Errorf("readModel = %q, %v", m, ok)
	}
}
