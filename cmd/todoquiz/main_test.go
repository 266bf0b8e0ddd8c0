package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todoquiz/internal/config"
	"todoquiz/internal/quiz"
	"todoquiz/internal/storage"
	"todoquiz/internal/task"
)

// setupEnv points the CLI at a fresh config directory and returns it.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, config.DefaultConfigFileName))
	t.Setenv(config.EnvDBPath, "")
	return dir
}

func seedStore(t *testing.T, dir string, tasks []task.Task, results []quiz.Result) {
	t.Helper()
	s, err := storage.Open(filepath.Join(dir, config.DefaultDBName))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if tasks != nil {
		if err := s.SaveTasks(tasks); err != nil {
			t.Fatal(err)
		}
	}
	if results != nil {
		if err := s.SaveHistory(results); err != nil {
			t.Fatal(err)
		}
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListFirstLaunchShowsSamples(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != len(task.Samples(time.Now())) {
		t.Errorf("expected one line per sample, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Drink 8 glasses of water") {
		t.Errorf("samples missing:\n%s", out)
	}
}

func TestShareSampleTaskOnFirstLaunch(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "list", "--search", "water")
	if err != nil {
		t.Fatal(err)
	}
	prefix := strings.Fields(out)[0]

	shared, err := run(t, "share", "--print", prefix)
	if err != nil {
		t.Fatalf("share %s: %v", prefix, err)
	}
	if !strings.Contains(shared, "Drink 8 glasses of water") {
		t.Errorf("unexpected share output %q", shared)
	}
}

func TestListFilters(t *testing.T) {
	dir := setupEnv(t)
	now := time.Now()
	seedStore(t, dir, []task.Task{
		task.New("Buy milk", now.Add(time.Hour), task.Shopping),
		task.New("Write report", now.Add(-time.Hour), task.Work),
		task.New("Buy stamps", now.Add(72*time.Hour), task.Shopping),
	}, nil)

	out, err := run(t, "list", "--category", "work")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Write report") || strings.Contains(out, "Buy milk") {
		t.Errorf("category filter failed:\n%s", out)
	}
	if !strings.Contains(out, " ! ") {
		t.Errorf("overdue task should be flagged:\n%s", out)
	}

	out, err = run(t, "list", "--search", "BUY", "--category", "shopping")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected both shopping tasks:\n%s", out)
	}

	if _, err := run(t, "list", "--category", "errands"); err == nil {
		t.Error("unknown category should fail")
	}
}

func TestSharePrint(t *testing.T) {
	dir := setupEnv(t)
	milk := task.New("Buy milk", time.Now().Add(time.Hour), task.Shopping)
	seedStore(t, dir, []task.Task{milk}, nil)

	out, err := run(t, "share", "--print", milk.ID[:6])
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != milk.ShareText() {
		t.Errorf("unexpected share output %q", out)
	}

	if _, err := run(t, "share", "--print", "zzzz"); err == nil {
		t.Error("unknown prefix should fail")
	}
}

func TestFindByPrefixAmbiguous(t *testing.T) {
	a := task.Task{ID: "abc-1"}
	b := task.Task{ID: "abd-2"}
	if _, err := findByPrefix([]task.Task{a, b}, "ab"); err == nil {
		t.Error("ambiguous prefix should fail")
	}
	got, err := findByPrefix([]task.Task{a, b}, "ABD")
	if err != nil || got.ID != b.ID {
		t.Errorf("findByPrefix = %+v, %v", got, err)
	}
}

func TestHistoryAndClear(t *testing.T) {
	dir := setupEnv(t)
	at := time.Now().Add(-time.Hour)
	seedStore(t, dir, nil, []quiz.Result{
		quiz.NewResult("What Movie Genre Are You?", quiz.Horror, at),
		quiz.NewResult("What's Your Food Personality?", quiz.Comedy, at.Add(time.Minute)),
	})

	out, err := run(t, "history")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Food") || !strings.Contains(lines[1], "Movie") {
		t.Errorf("expected newest first:\n%s", out)
	}

	if _, err := run(t, "history", "clear"); err != nil {
		t.Fatal(err)
	}
	out, _ = run(t, "history")
	if !strings.Contains(out, "No quiz results yet.") {
		t.Errorf("history not cleared:\n%s", out)
	}
}
