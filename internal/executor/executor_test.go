package executor

import (
	"os"
	"slices"
	"testing"

	"github.com/danieljhkim/fsbatch/internal/fsops"
	"github.com/danieljhkim/fsbatch/internal/task"
	"github.com/spf13/afero"
)

// denyRenameFS fails every rename whose source is listed in deny.
type denyRenameFS struct {
	fsops.FS
	deny map[string]bool
}

func (d *denyRenameFS) Rename(oldpath, newpath string) error {
	if d.deny[oldpath] {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrPermission}
	}
	return d.FS.Rename(oldpath, newpath)
}

func seed(t *testing.T, mem afero.Fs, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := afero.WriteFile(mem, p, []byte(p), 0644); err != nil {
			t.Fatalf("failed to seed %s: %v", p, err)
		}
	}
}

func exists(t *testing.T, mem afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(mem, path)
	if err != nil {
		t.Fatalf("Exists(%s): %v", path, err)
	}
	return ok
}

func TestExecute_AllSucceed(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "/w/a/x.txt", "/w/b/y.txt")

	ex := New(fsops.New(mem), nil)
	result := ex.Execute([]task.PlannedTask{
		task.New("/w/a/x.txt", "/w/x.txt"),
		task.New("/w/b/y.txt", "/w/y.txt"),
	})

	if result != (task.BatchResult{Successful: 2, Failed: 0}) {
		t.Fatalf("Execute() = %+v, want 2 successful", result)
	}
	for _, p := range []string{"/w/x.txt", "/w/y.txt"} {
		if !exists(t, mem, p) {
			t.Errorf("%s should exist after execution", p)
		}
	}
	for _, p := range []string{"/w/a/x.txt", "/w/b/y.txt"} {
		if exists(t, mem, p) {
			t.Errorf("%s should have been moved", p)
		}
	}
	if len(ex.Failures()) != 0 {
		t.Errorf("Failures() = %v, want none", ex.Failures())
	}
}

func TestExecute_PartialFailureContinues(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "/w/a/x.txt", "/w/b/y.txt", "/w/c/z.txt")

	fsys := &denyRenameFS{FS: fsops.New(mem), deny: map[string]bool{"/w/b/y.txt": true}}
	ex := New(fsys, nil)

	tasks := []task.PlannedTask{
		task.New("/w/a/x.txt", "/w/x.txt"),
		task.New("/w/b/y.txt", "/w/y.txt"),
		task.New("/w/c/z.txt", "/w/z.txt"),
	}
	result := ex.Execute(tasks)

	if result != (task.BatchResult{Successful: 2, Failed: 1}) {
		t.Fatalf("Execute() = %+v, want {2 1}", result)
	}
	if result.Total() != len(tasks) {
		t.Errorf("Total() = %d, want %d", result.Total(), len(tasks))
	}

	failures := ex.Failures()
	if len(failures) != 1 {
		t.Fatalf("Failures() = %v, want one entry", failures)
	}
	if failures[0].Path != "/w/b/y.txt" {
		t.Errorf("failure path = %q, want /w/b/y.txt", failures[0].Path)
	}
	if failures[0].Reason == "" {
		t.Error("failure reason should carry the rename error")
	}

	if !exists(t, mem, "/w/z.txt") {
		t.Error("task after the failure should still run")
	}
	if !exists(t, mem, "/w/b/y.txt") {
		t.Error("failed source should be untouched")
	}

	completed := ex.Completed()
	want := []task.PlannedTask{tasks[0], tasks[2]}
	if !slices.Equal(completed, want) {
		t.Errorf("Completed() = %v, want %v", completed, want)
	}
}

func TestExecute_ResetsBetweenBatches(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "/w/a/x.txt")

	fsys := &denyRenameFS{FS: fsops.New(mem), deny: map[string]bool{"/w/missing.txt": true}}
	ex := New(fsys, nil)

	ex.Execute([]task.PlannedTask{task.New("/w/missing.txt", "/w/m.txt")})
	if len(ex.Failures()) != 1 {
		t.Fatalf("first batch Failures() = %v, want one", ex.Failures())
	}

	result := ex.Execute([]task.PlannedTask{task.New("/w/a/x.txt", "/w/x.txt")})
	if result.Failed != 0 || len(ex.Failures()) != 0 {
		t.Errorf("second batch should start clean, got %+v and %v", result, ex.Failures())
	}
}

func TestExecute_OccupiedDestinationIsAFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "/w/a/x.txt", "/w/x.txt")

	ex := New(fsops.New(mem), nil)
	result := ex.Execute([]task.PlannedTask{task.New("/w/a/x.txt", "/w/x.txt")})

	if result != (task.BatchResult{Successful: 0, Failed: 1}) {
		t.Fatalf("Execute() = %+v, want {0 1}", result)
	}
	data, _ := afero.ReadFile(mem, "/w/x.txt")
	if string(data) != "/w/x.txt" {
		t.Errorf("existing destination was overwritten: %q", data)
	}
}

func TestExecute_Empty(t *testing.T) {
	ex := New(fsops.NewMemFS(), nil)
	result := ex.Execute(nil)
	if result != (task.BatchResult{}) {
		t.Errorf("Execute(nil) = %+v, want zero", result)
	}
}

func TestCleanupEmptyDirs(t *testing.T) {
	mem := afero.NewMemMapFs()
	seed(t, mem, "/w/keep/k.txt", "/w/x.txt")
	for _, d := range []string{"/w/a", "/w/b/c/d", "/w/keep/empty"} {
		if err := mem.MkdirAll(d, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", d, err)
		}
	}

	ex := New(fsops.New(mem), nil)
	removed := ex.CleanupEmptyDirs("/w")

	for _, d := range []string{"/w/a", "/w/b", "/w/b/c", "/w/b/c/d", "/w/keep/empty"} {
		if exists(t, mem, d) {
			t.Errorf("%s should have been removed", d)
		}
	}
	for _, p := range []string{"/w", "/w/keep", "/w/keep/k.txt", "/w/x.txt"} {
		if !exists(t, mem, p) {
			t.Errorf("%s should have been kept", p)
		}
	}
	if len(removed) != 5 {
		t.Errorf("CleanupEmptyDirs() removed %v, want 5 directories", removed)
	}
	if removed[0] != "/w/b/c/d" {
		t.Errorf("deepest directory should go first, got %v", removed)
	}
}

func TestCleanupEmptyDirs_MissingRoot(t *testing.T) {
	ex := New(fsops.NewMemFS(), nil)
	if removed := ex.CleanupEmptyDirs("/nope"); removed != nil {
		t.Errorf("CleanupEmptyDirs() = %v, want nil", removed)
	}
}

func TestCleanupEmptyDirs_IgnoresRemoveErrors(t *testing.T) {
	mem := afero.NewMemMapFs()
	_ = mem.MkdirAll("/w/a", 0755)

	ro := fsops.New(afero.NewReadOnlyFs(mem))
	ex := New(ro, nil)

	removed := ex.CleanupEmptyDirs("/w")
	if len(removed) != 0 {
		t.Errorf("CleanupEmptyDirs() = %v, want nothing removed", removed)
	}
	if !exists(t, mem, "/w/a") {
		t.Error("/w/a should survive a failed removal")
	}
}
