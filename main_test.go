package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/robalobadob/mastermind/internal/code"
	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/game"
)

const testSeed = 7

// secretFor returns the code run will draw from a source seeded with seed.
func secretFor(seed int64) game.Code {
	return code.Generate(code.NewSeededSource(seed))
}

// losingGuess returns a valid code that differs from secret.
func losingGuess(secret game.Code) string {
	if secret == (game.Code{1, 1, 1, 1}) {
		return "2222"
	}
	return "1111"
}

func setLogEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")
}

func TestRunWin(t *testing.T) {
	setLogEnv(t)
	secret := secretFor(testSeed)
	var stdout, stderr bytes.Buffer
	input := "nope\n" + secret.String() + "\n"

	rc := run(code.NewSeededSource(testSeed), strings.NewReader(input), &stdout, &stderr)
	if rc != exitOK {
		t.Fatalf("exit code = %d, want %d (stderr %q)", rc, exitOK, stderr.String())
	}
	if !strings.HasSuffix(stdout.String(), "++++\n"+console.DefaultMessages().Win+"\n") {
		t.Fatalf("stdout = %q, want win", stdout.String())
	}
}

func TestRunLose(t *testing.T) {
	setLogEnv(t)
	secret := secretFor(testSeed)
	var stdout, stderr bytes.Buffer
	input := strings.Repeat(losingGuess(secret)+"\n", game.MaxAttempts)

	rc := run(code.NewSeededSource(testSeed), strings.NewReader(input), &stdout, &stderr)
	if rc != exitOK {
		t.Fatalf("exit code = %d, want %d", rc, exitOK)
	}
	if !strings.HasSuffix(stdout.String(), console.DefaultMessages().Lose+"\n") {
		t.Fatalf("stdout = %q, want lose", stdout.String())
	}
}

func TestRunInputExhausted(t *testing.T) {
	setLogEnv(t)
	secret := secretFor(testSeed)
	var stdout, stderr bytes.Buffer
	input := losingGuess(secret) + "\n"

	rc := run(code.NewSeededSource(testSeed), strings.NewReader(input), &stdout, &stderr)
	if rc != exitFailure {
		t.Fatalf("exit code = %d, want %d", rc, exitFailure)
	}
	msgs := console.DefaultMessages()
	if strings.Contains(stdout.String(), msgs.Lose) || strings.Contains(stdout.String(), msgs.Win) {
		t.Fatalf("stdout %q reports an outcome", stdout.String())
	}
	if !strings.Contains(stderr.String(), "input ended") {
		t.Fatalf("stderr = %q, want input ended log", stderr.String())
	}
	if n := strings.Count(strings.TrimSpace(stderr.String()), "\n") + 1; n != 1 {
		t.Fatalf("stderr has %d log lines, want 1: %q", n, stderr.String())
	}
}

func TestRunConfigError(t *testing.T) {
	t.Setenv("LOG_FORMAT", "yaml")
	var stdout, stderr bytes.Buffer
	rc := run(code.NewSeededSource(testSeed), strings.NewReader(""), &stdout, &stderr)
	if rc != exitConfigError {
		t.Fatalf("exit code = %d, want %d", rc, exitConfigError)
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", stdout.String())
	}
}
