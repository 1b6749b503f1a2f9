package audio

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestNewDisabledReturnsSilentSpeaker(t *testing.T) {
	s := New(false, "en")
	if s.Enabled() {
		t.Error("disabled speaker reports Enabled() = true")
	}
	// Must be safe to call with no engine present
	s.Speak("hello")
	s.SpeakWait("hello")
	s.Stop()
}

func TestResolveEnginePrefersSpdSay(t *testing.T) {
	s := &execSpeaker{
		language: "en",
		goos:     "linux",
		lookPath: func(name string) (string, error) {
			if name == "spd-say" || name == "espeak" {
				return "/usr/bin/" + name, nil
			}
			return "", errors.New("not found")
		},
	}
	s.resolveEngine()
	if s.engine != "spd-say" {
		t.Errorf("engine = %q, want spd-say", s.engine)
	}
}

func TestResolveEngineFallsBackToEspeak(t *testing.T) {
	s := &execSpeaker{
		language: "en",
		goos:     "linux",
		lookPath: func(name string) (string, error) {
			if name == "espeak" {
				return "/usr/bin/espeak", nil
			}
			return "", errors.New("not found")
		},
	}
	s.resolveEngine()
	if s.engine != "espeak" {
		t.Errorf("engine = %q, want espeak", s.engine)
	}
}

func TestResolveEngineNoneFound(t *testing.T) {
	s := &execSpeaker{
		language: "en",
		goos:     "linux",
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	s.resolveEngine()
	if s.engine != "" {
		t.Errorf("engine = %q, want empty when nothing is installed", s.engine)
	}
	// Speaking without an engine is a no-op, not a crash
	s.Speak("hello")
}

func TestResolveEngineWindows(t *testing.T) {
	s := &execSpeaker{
		language: "en",
		goos:     "windows",
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	s.resolveEngine()
	if s.engine != "powershell" {
		t.Errorf("engine = %q, want powershell on windows", s.engine)
	}
}

func TestSpeakWaitBlocksUntilPlaybackFinishes(t *testing.T) {
	ran := make([]string, 0, 1)
	s := &execSpeaker{
		language: "en",
		goos:     "linux",
		lookPath: func(name string) (string, error) {
			if name == "espeak" {
				return "/usr/bin/espeak", nil
			}
			return "", errors.New("not found")
		},
		run: func(cmd *exec.Cmd) error {
			ran = append(ran, strings.Join(cmd.Args, " "))
			return nil
		},
	}

	s.SpeakWait("Welcome alice", "Let's practice your spelling!")

	if len(ran) != 1 {
		t.Fatalf("engine ran %d times, want 1", len(ran))
	}
	if want := "/usr/bin/espeak -v en Welcome alice. Let's practice your spelling!"; ran[0] != want {
		t.Errorf("command = %q, want %q", ran[0], want)
	}

	// Nothing is tracked as still playing, so a later Stop kills nothing
	if s.current != nil {
		t.Error("SpeakWait left a process registered for Stop to kill")
	}
}

func TestSpeakWaitNoEngineIsSilent(t *testing.T) {
	s := &execSpeaker{
		language: "en",
		goos:     "linux",
		lookPath: func(string) (string, error) { return "", errors.New("not found") },
		run: func(*exec.Cmd) error {
			t.Error("run was called with no engine installed")
			return nil
		},
	}
	s.SpeakWait("hello")
}

func TestBuildCommandArguments(t *testing.T) {
	s := &execSpeaker{language: "de", engine: "spd-say", enginePath: "/usr/bin/spd-say"}
	cmd := s.buildCommand("Hund")
	want := []string{"/usr/bin/spd-say", "--wait", "-l", "de", "Hund"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestPowershellScript(t *testing.T) {
	script := powershellScript("it's time", "de")
	if !strings.Contains(script, "de-*") {
		t.Errorf("script does not select a German voice:\n%s", script)
	}
	if !strings.Contains(script, "it''s time") {
		t.Errorf("script does not escape single quotes:\n%s", script)
	}
}
