package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func taskEnv(t *testing.T) *Environment {
	t.Helper()
	dir := t.TempDir()
	return &Environment{Workspace: dir, Src: filepath.Join(dir, "src"), Template: "golang"}
}

func TestRunTask_Success(t *testing.T) {
	res, err := RunTask(context.Background(), "echo hello world", taskEnv(t))
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d", res.ExitCode)
	}
	if strings.TrimSpace(res.Stdout) != "hello world" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
	if res.Elapsed <= 0 {
		t.Fatalf("Elapsed = %v", res.Elapsed)
	}
}

func TestRunTask_NonZeroExitIsNotAnError(t *testing.T) {
	res, err := RunTask(context.Background(), `sh -c "echo oops >&2; exit 3"`, taskEnv(t))
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", res.ExitCode)
	}
	if strings.TrimSpace(res.Stderr) != "oops" {
		t.Fatalf("stderr = %q", res.Stderr)
	}
	if res.Stdout != "" {
		t.Fatalf("stdout = %q, want empty", res.Stdout)
	}
}

func TestRunTask_RunsInWorkspace(t *testing.T) {
	env := taskEnv(t)
	res, err := RunTask(context.Background(), "pwd", env)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(env.Workspace)
	got, _ := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	if got != want {
		t.Fatalf("pwd = %q, want %q", got, want)
	}
}

func TestRunTask_QuotingAndVariables(t *testing.T) {
	env := taskEnv(t)
	env.DotEnv = map[string]string{"GREETING": "hi there"}
	res, err := RunTask(context.Background(), `sh -c 'printf "%s|%s" "$1" "$TAU_TEMPLATE"' _ "$GREETING"`, env)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stdout != "hi there|golang" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestRunTask_EnvReachesChild(t *testing.T) {
	env := taskEnv(t)
	if err := os.WriteFile(filepath.Join(env.Workspace, ".env"), []byte("PORT=9090\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dotenv, err := LoadDotEnv(env.Workspace)
	if err != nil {
		t.Fatal(err)
	}
	env.DotEnv = dotenv
	res, err := RunTask(context.Background(), `sh -c 'echo $PORT'`, env)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(res.Stdout) != "9090" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestRunTask_EmptyLineIsSkipped(t *testing.T) {
	res, err := RunTask(context.Background(), "   ", taskEnv(t))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Skipped {
		t.Fatal("expected Skipped")
	}
}

func TestRunTask_InvalidSyntax(t *testing.T) {
	_, err := RunTask(context.Background(), `echo "unterminated`, taskEnv(t))
	if !errors.Is(err, ErrInvalidCommand) {
		t.Fatalf("err = %v, want ErrInvalidCommand", err)
	}
}

func TestRunTask_MissingBinaryIsAnError(t *testing.T) {
	_, err := RunTask(context.Background(), "tau-no-such-binary-xyz", taskEnv(t))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRunTask_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunTask(ctx, "sleep 5", taskEnv(t))
	if err == nil {
		t.Fatal("expected error")
	}
}
