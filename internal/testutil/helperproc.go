// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"testing"
)

const (
	// HelperProcessEnv switches a test binary into helper-process mode.
	HelperProcessEnv = "CONDASHIM_TEST_HELPER"
	helperExitEnv    = "CONDASHIM_TEST_HELPER_EXIT"
	helperSignalEnv  = "CONDASHIM_TEST_HELPER_INTERRUPT_PARENT"
)

// HelperReport is what a helper process prints on stdout.
type HelperReport struct {
	Args []string `json:"args"`
	Path string   `json:"path"`
}

// RunHelperProcessIfRequested turns the current test binary into a fake
// target program when HelperProcessEnv is set: it reports its arguments and
// PATH as JSON on stdout and exits with the requested code. Call it first
// thing in TestMain.
// With HelperInterruptParentEnv set it interrupts its parent first.
func RunHelperProcessIfRequested() {
	if os.Getenv(HelperProcessEnv) != "1" {
		return
	}
	if os.Getenv(helperSignalEnv) == "1" {
		interruptParent()
	}
	report := HelperReport{Args: os.Args[1:], Path: os.Getenv("PATH")}
	if report.Args == nil {
		report.Args = []string{}
	}
	if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
		os.Exit(100)
	}
	code, err := strconv.Atoi(os.Getenv(helperExitEnv))
	if err != nil {
		code = 0
	}
	os.Exit(code)
}

// HelperEnv returns the environment entries that make a copy of the test
// binary behave as a helper process exiting with exitCode.
func HelperEnv(exitCode int) []string {
	return []string{
		HelperProcessEnv + "=1",
		helperExitEnv + "=" + strconv.Itoa(exitCode),
	}
}

// HelperInterruptParentEnv returns the environment entry that makes a helper
// process send an interrupt to its parent before reporting. Only supported on
// unix.
func HelperInterruptParentEnv() string {
	return helperSignalEnv + "=1"
}

// InstallHelperExecutable copies the running test binary to dst so that it
// can be launched as a target program.
func InstallHelperExecutable(t testing.TB, dst string) {
	t.Helper()
	self, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to locate test binary: %v", err)
	}
	in, err := os.Open(self)
	if err != nil {
		t.Fatalf("failed to open test binary: %v", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		t.Fatalf("failed to create %s: %v", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		t.Fatalf("failed to copy test binary to %s: %v", dst, err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("failed to close %s: %v", dst, err)
	}
}

// DecodeHelperReport parses the JSON a helper process printed.
func DecodeHelperReport(t testing.TB, data []byte) HelperReport {
	t.Helper()
	var report HelperReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("failed to decode helper output %q: %v", data, err)
	}
	return report
}
