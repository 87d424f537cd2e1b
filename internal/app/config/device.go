package config

import "os/exec"

// ResolveDevice turns the device preference into a concrete selector. "auto"
// picks cuda when an NVIDIA driver is visible on PATH, otherwise cpu. The
// selector only matters for the local engine.
func ResolveDevice(preference string) string {
	switch preference {
	case "cpu", "cuda":
		return preference
	}
	if _, err := exec.LookPath("nvidia-smi"); err == nil {
		return "cuda"
	}
	return "cpu"
}
