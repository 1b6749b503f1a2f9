// Package term renders the interactive terminal UI and reads typed
// answers without blocking interrupt handling.
package term

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"spelltrainer/internal/i18n"
	"spelltrainer/internal/models"
	"spelltrainer/internal/service"
)

// Presenter writes review prompts and feedback to a terminal. In speech
// mode anything that would reveal the spelling stays off the screen and
// the user types after the spoken prompt instead.
type Presenter struct {
	out        io.Writer
	tr         *i18n.Translator
	speechMode bool

	success   *color.Color
	failure   *color.Color
	highlight *color.Color
	heading   *color.Color
}

// NewPresenter creates a presenter writing to out. colorEnabled turns ANSI
// colors off entirely, for tests and dumb terminals.
func NewPresenter(out io.Writer, tr *i18n.Translator, colorEnabled, speechMode bool) *Presenter {
	p := &Presenter{
		out:        out,
		tr:         tr,
		speechMode: speechMode,
		success:    color.New(color.FgGreen, color.Bold),
		failure:    color.New(color.FgRed, color.Bold),
		highlight:  color.New(color.FgYellow, color.Bold),
		heading:    color.New(color.FgCyan),
	}
	if !colorEnabled {
		for _, c := range []*color.Color{p.success, p.failure, p.highlight, p.heading} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Presenter) ReviewIntro(today string, total, alreadyReviewed int) {
	if p.speechMode {
		return
	}
	fmt.Fprintln(p.out, p.tr.T("TODAY", "today", today))
	fmt.Fprintln(p.out, p.tr.T("REVIEW_START",
		"n", strconv.Itoa(total),
		"m", strconv.Itoa(models.MasteryStreak)))
	if alreadyReviewed > 0 {
		fmt.Fprintln(p.out, p.tr.T("ALREADY_REVIEWED_TODAY", "n", strconv.Itoa(alreadyReviewed)))
	}
}

func (p *Presenter) NothingDue() {
	fmt.Fprintln(p.out, p.tr.T("NO_WORDS_DUE"))
}

func (p *Presenter) AllDoneToday() {
	fmt.Fprintln(p.out, p.tr.T("ALL_DONE_TODAY"))
}

func (p *Presenter) ShowWord(index, total int, entry *models.WordEntry) {
	fmt.Fprintln(p.out)
	p.heading.Fprintln(p.out, strings.Repeat("=", 46))
	p.heading.Fprintln(p.out, p.tr.T("PROGRESS",
		"i", strconv.Itoa(index),
		"n", strconv.Itoa(total),
		"s", strconv.Itoa(entry.Streak()),
		"m", strconv.Itoa(models.MasteryStreak)))

	if p.speechMode {
		// The spoken prompt carries the word; the screen stays neutral
		fmt.Fprint(p.out, "> ")
		return
	}

	if entry.Phrase != "" {
		fmt.Fprintln(p.out, HighlightWordInPhrase(entry.Phrase, entry.Word, p.highlight))
	} else {
		fmt.Fprintln(p.out, p.tr.T("NO_PHRASE"))
		fmt.Fprintln(p.out, p.highlight.Sprint(entry.Word))
	}
	fmt.Fprint(p.out, p.tr.T("TYPE_WORD")+" ")
}

func (p *Presenter) Correct(entry *models.WordEntry) {
	streak := strconv.Itoa(entry.Streak())
	mastery := strconv.Itoa(models.MasteryStreak)
	if entry.Mastered() {
		p.success.Fprintln(p.out, p.tr.T("MASTERED_NOW", "s", streak, "m", mastery))
		return
	}
	p.success.Fprintln(p.out, p.tr.T("CORRECT_STREAK", "s", streak, "m", mastery))
}

func (p *Presenter) Wrong(entry *models.WordEntry) {
	p.failure.Fprintln(p.out, p.tr.T("WRONG"))
	fmt.Fprintln(p.out, p.tr.T("EXPECTED", "word", p.highlight.Sprint(entry.Word)))
	fmt.Fprintln(p.out, p.tr.T("RESET_STREAK", "m", strconv.Itoa(models.MasteryStreak)))
}

func (p *Presenter) Done(summary service.ReviewSummary) {
	fmt.Fprintln(p.out)
	p.success.Fprintln(p.out, p.tr.T("DONE"))
	fmt.Fprintf(p.out, "%d/%d\n", summary.Correct, summary.Reviewed)
}

// Notice prints a single translated line
func (p *Presenter) Notice(key string, args ...string) {
	fmt.Fprintln(p.out, p.tr.T(key, args...))
}

// Headline prints a translated line in the heading color
func (p *Presenter) Headline(key string, args ...string) {
	p.heading.Fprintln(p.out, p.tr.T(key, args...))
}

// RenderList prints the due and mastered words for the list command
func (p *Presenter) RenderList(today string, due, mastered []*models.WordEntry) {
	p.heading.Fprintln(p.out, p.tr.T("DUE_TITLE"))
	if len(due) == 0 {
		fmt.Fprintln(p.out, "  "+p.tr.T("NONE"))
	}
	for _, entry := range due {
		line := fmt.Sprintf("  %s  %s", p.highlight.Sprint(entry.Word), p.tr.T("STREAK",
			"s", strconv.Itoa(entry.Streak()),
			"m", strconv.Itoa(models.MasteryStreak)))
		if entry.ReviewedToday(today) {
			line += "  [" + p.tr.T("TODAY_FLAG") + "]"
		} else if last := entry.LastReview(); last != "" {
			line += "  " + p.tr.T("LAST", "last", last)
		}
		fmt.Fprintln(p.out, line)
	}

	fmt.Fprintln(p.out)
	p.heading.Fprintln(p.out, p.tr.T("MASTERED_TITLE"))
	if len(mastered) == 0 {
		fmt.Fprintln(p.out, "  "+p.tr.T("NONE"))
	}
	for _, entry := range mastered {
		fmt.Fprintf(p.out, "  %s  %s\n", p.success.Sprint(entry.Word),
			p.tr.T("LAST", "last", entry.LastReview()))
	}
}

// HighlightWordInPhrase colors every case-insensitive occurrence of word
// inside phrase. Returns the phrase unchanged when the word cannot be
// turned into a pattern.
func HighlightWordInPhrase(phrase, word string, c *color.Color) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
	if err != nil {
		return phrase
	}
	return re.ReplaceAllStringFunc(phrase, func(m string) string {
		return c.Sprint(m)
	})
}
