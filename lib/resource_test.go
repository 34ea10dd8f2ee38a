package awp5

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// The function and method surfaces run the same command and must return
// the same result.
func TestResourceSurfaces(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
"Job 10042 status") echo "completed" ;;
"Volume names") echo "10001 10002 <empty>" ;;
"Volume 10001 isonline") echo "1" ;;
"Pool Default disabled") echo "0" ;;
"ArchiveEntry h1 mtime") echo "1617709337 1617795737" ;;
"Server s1 lastbegin") echo "1617709337" ;;
"Server s1 nextrun") echo "0" ;;
esac`)

	status, err := JobStatus(c, "10042")
	if err != nil {
		t.Fatal(err)
	}
	mStatus, err := NewJob(c, "10042").Status()
	if err != nil {
		t.Fatal(err)
	}
	if status != "completed" || mStatus != status {
		t.Errorf("does not match: %v %v", status, mStatus)
	}

	names, err := VolumeNames(c)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"10001", "10002"}) {
		t.Errorf("sentinel not filtered: %v", names)
	}

	online, err := VolumeIsOnline(c, "10001")
	if err != nil {
		t.Fatal(err)
	}
	mOnline, err := NewVolume(c, "10001").IsOnline()
	if err != nil {
		t.Fatal(err)
	}
	if !online || mOnline != online {
		t.Errorf("does not match: %v %v", online, mOnline)
	}

	disabled, err := PoolDisabled(c, "Default")
	if err != nil {
		t.Fatal(err)
	}
	mDisabled, err := NewPool(c, "Default").Disabled()
	if err != nil {
		t.Fatal(err)
	}
	if disabled || mDisabled != disabled {
		t.Errorf("does not match: %v %v", disabled, mDisabled)
	}

	mtimes, err := ArchiveEntryMTime(c, "h1")
	if err != nil {
		t.Fatal(err)
	}
	mMtimes, err := NewArchiveEntry(c, "h1").MTime()
	if err != nil {
		t.Fatal(err)
	}
	expected := []time.Time{time.Unix(1617709337, 0), time.Unix(1617795737, 0)}
	if !reflect.DeepEqual(mtimes, expected) || !reflect.DeepEqual(mMtimes, expected) {
		t.Errorf("does not match: %v %v %v", expected, mtimes, mMtimes)
	}

	begin, err := ServerLastBegin(c, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if !begin.Equal(time.Unix(1617709337, 0)) {
		t.Errorf("does not match: %v", begin)
	}

	next, err := NewServer(c, "s1").NextRun()
	if err != nil {
		t.Fatal(err)
	}
	if !next.IsZero() {
		t.Errorf("expected no scheduled run, got %v", next)
	}

	if name := NewJob(c, "10042").Name(); name != "10042" {
		t.Errorf("does not match: %v", name)
	}
}

// The destroy commands answer 0 on success, the inverse of every other
// flag reply.
func TestDestroyReply(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
"ArchiveSelection sel1 destroy") echo "0" ;;
"SyncSelection sel2 destroy") echo "1" ;;
esac`)

	destroyed, err := ArchiveSelectionDestroy(c, "sel1")
	if err != nil {
		t.Fatal(err)
	}
	if !destroyed {
		t.Error("0 reply means the selection was destroyed")
	}

	destroyed, err = SyncSelectionDestroy(c, "sel2")
	if err != nil {
		t.Fatal(err)
	}
	if destroyed {
		t.Error("1 reply means the selection was not destroyed")
	}
}

func TestConfigureReply(t *testing.T) {
	c := openFakeCLI(t, `
case "$*" in
"srvinfo lexxvers") echo "7.5.2" ;;
"Server configure p5srv 8000 admin secret generic") echo "10007" ;;
"Server configure down.test 8000 admin secret") echo "-1" ;;
"Workstation configure ws.test 8000 admin bad") echo "-2" ;;
"Workstation configure ws.test 8000 admin secret tmpl9") echo "-3" ;;
esac`)

	name, err := ServerConfigure(c, "p5srv", 8000, "admin", "secret", "generic")
	if err != nil {
		t.Fatal(err)
	}
	if name != "10007" {
		t.Errorf("does not match: 10007 %v", name)
	}

	if _, err := ServerConfigure(c, "down.test", 8000, "admin", "secret", ""); !errors.Is(err, ErrPeerUnreachable) {
		t.Errorf("expected ErrPeerUnreachable, got %v", err)
	}
	if _, err := WorkstationConfigure(c, "ws.test", 8000, "admin", "bad", ""); !errors.Is(err, ErrPeerCredentials) {
		t.Errorf("expected ErrPeerCredentials, got %v", err)
	}
	if _, err := WorkstationConfigure(c, "ws.test", 8000, "admin", "secret", "tmpl9"); !errors.Is(err, ErrPeerTemplate) {
		t.Errorf("expected ErrPeerTemplate, got %v", err)
	}
}

// Exact argument vectors of the operations that assemble optional words.
func TestCommandWords(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "words.log")
	bin := filepath.Join(dir, "nsdchat")
	script := fmt.Sprintf(`#!/bin/sh
shift 3
case "$*" in
"srvinfo lexxvers") echo "7.5.2"; exit 0 ;;
geterror) exit 0 ;;
esac
printf '%%s\n' "$*" >> %s
echo 1
`, logPath)
	if err := os.WriteFile(bin, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	c, err := Open(Config{Server: "p5.test", Username: "admin", Password: "secret", Nsdchat: bin, Timeout: 10 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	calls := []func() error{
		func() error { _, err := ArchivePlanRun(c, "10001", true); return err },
		func() error { _, err := BackupPlanSubmit(c, "10002", true); return err },
		func() error { _, err := ArchiveSelectionSubmit(c, "sel1", true); return err },
		func() error { _, err := RestoreSelectionSubmit(c, "sel2", time.Unix(1617709337, 0)); return err },
		func() error { _, err := WorkstationSnapshots(c, "ws1", time.Time{}); return err },
		func() error { _, err := ArchiveEntrySetClipPath(c, "h1", ""); return err },
		func() error { return ServerSetPathList(c, "s1", "/data", "/Volumes/My Media") },
		func() error { return Backup2GoCleanup(c, true, false) },
		func() error { _, err := ClientPing(c, "workstation-7", 0); return err },
	}
	for i, call := range calls {
		if err := call(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"ArchivePlan 10001 run -delete 1",
		"BackupPlan 10002 submit now",
		"ArchiveSelection sel1 submit 1",
		"RestoreSelection sel2 submit 1617709337",
		"Workstation ws1 snapshots",
		"ArchiveEntry h1 clippath {}",
		"Server s1 pathlist /data {/Volumes/My Media}",
		"Backup2Go cleanup snapshots",
		"Client workstation-7 ping",
	}
	result := strings.Split(strings.TrimSpace(string(data)), "\n")
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("does not match:\nexpected: %v\ngot:      %v", expected, result)
	}
}
