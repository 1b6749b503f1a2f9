// Package audio speaks prompts through whatever speech engine the host
// has installed. Playback is best-effort; a missing engine logs one
// warning and the session continues silently.
package audio

import (
	"log"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// Speaker plays spoken prompts. Speak starts playback in the background
// and silences whatever was still playing; SpeakWait blocks until the
// utterance has finished, so it survives whatever plays next.
type Speaker interface {
	Enabled() bool
	Speak(parts ...string)
	SpeakWait(parts ...string)
	Stop()
}

// New returns a speaker for language, or a silent one when speech is off
func New(enabled bool, language string) Speaker {
	if !enabled {
		return &noopSpeaker{}
	}
	return &execSpeaker{
		language: language,
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
		run:      (*exec.Cmd).Run,
	}
}

// noopSpeaker is used when speech mode is off
type noopSpeaker struct{}

func (*noopSpeaker) Enabled() bool { return false }

func (*noopSpeaker) Speak(...string) {}

func (*noopSpeaker) SpeakWait(...string) {}

func (*noopSpeaker) Stop() {}

// execSpeaker shells out to a local speech engine. On Linux it probes for
// spd-say, espeak-ng and espeak in that order; on Windows it uses the
// built-in System.Speech synthesizer through PowerShell.
type execSpeaker struct {
	language string
	lookPath func(string) (string, error)
	goos     string
	run      func(*exec.Cmd) error

	mu      sync.Mutex
	current *exec.Cmd

	resolveOnce sync.Once
	engine      string
	enginePath  string
}

func (s *execSpeaker) Enabled() bool { return true }

// Speak starts speaking the parts joined into one utterance. An utterance
// still playing from the previous prompt is cut off first.
func (s *execSpeaker) Speak(parts ...string) {
	text := strings.TrimSpace(strings.Join(parts, ". "))
	if text == "" {
		return
	}

	s.resolveEngine()
	if s.engine == "" {
		return
	}

	cmd := s.buildCommand(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	if err := cmd.Start(); err != nil {
		log.Printf("Warning: speech engine failed to start: %v", err)
		return
	}
	s.current = cmd
	go cmd.Wait()
}

// SpeakWait speaks the parts and blocks until playback finishes. Stop and
// a following Speak cannot cut it off, which is what greetings need.
func (s *execSpeaker) SpeakWait(parts ...string) {
	text := strings.TrimSpace(strings.Join(parts, ". "))
	if text == "" {
		return
	}

	s.resolveEngine()
	if s.engine == "" {
		return
	}

	if err := s.run(s.buildCommand(text)); err != nil {
		log.Printf("Warning: speech engine failed: %v", err)
	}
}

// Stop silences the utterance currently playing, if any
func (s *execSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *execSpeaker) stopLocked() {
	if s.current == nil {
		return
	}
	if s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}

func (s *execSpeaker) resolveEngine() {
	s.resolveOnce.Do(func() {
		if s.goos == "windows" {
			s.engine = "powershell"
			s.enginePath = "powershell"
			return
		}
		for _, candidate := range []string{"spd-say", "espeak-ng", "espeak"} {
			if path, err := s.lookPath(candidate); err == nil {
				s.engine = candidate
				s.enginePath = path
				return
			}
		}
		log.Printf("Warning: no speech engine found (tried spd-say, espeak-ng, espeak); continuing without audio")
	})
}

func (s *execSpeaker) buildCommand(text string) *exec.Cmd {
	switch s.engine {
	case "powershell":
		return exec.Command(s.enginePath, "-NoProfile", "-Command", powershellScript(text, s.language))
	case "spd-say":
		return exec.Command(s.enginePath, "--wait", "-l", s.language, text)
	default: // espeak-ng, espeak
		return exec.Command(s.enginePath, "-v", s.language, text)
	}
}

// powershellScript builds a System.Speech invocation that prefers a voice
// matching the configured language
func powershellScript(text, language string) string {
	culture := "en-"
	if strings.HasPrefix(strings.ToLower(language), "de") {
		culture = "de-"
	}
	var b strings.Builder
	b.WriteString("Add-Type -AssemblyName System.Speech; ")
	b.WriteString("$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; ")
	b.WriteString("$v = $s.GetInstalledVoices() | Where-Object { $_.VoiceInfo.Culture.Name -like '")
	b.WriteString(culture)
	b.WriteString("*' } | Select-Object -First 1; ")
	b.WriteString("if ($v) { $s.SelectVoice($v.VoiceInfo.Name) }; ")
	b.WriteString("$s.Speak('")
	b.WriteString(strings.ReplaceAll(text, "'", "''"))
	b.WriteString("')")
	return b.String()
}
