// Package streak implements the spaced-repetition streak engine: pure
// functions that decide mastery, due-ness and review-queue membership from a
// word's history and a reference date. Nothing in here touches disk or the
// terminal; callers own all side effects.
package streak

import (
	"sort"
	"strings"

	"spelltrainer/internal/models"
)

// BuildQueue returns every entry that is due for review today: not yet
// mastered and not already reviewed successfully today. Each due entry
// appears exactly once. The order is unspecified; the review session
// shuffles the queue before presenting it.
func BuildQueue(entries map[string]*models.WordEntry, today string) []*models.WordEntry {
	queue := make([]*models.WordEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Mastered() && !e.ReviewedToday(today) {
			queue = append(queue, e)
		}
	}
	return queue
}

// ReviewedTodayCount returns how many non-mastered entries were already
// reviewed successfully today. The review session uses it to tell "all done
// for today" apart from "nothing due at all" when the queue is empty.
func ReviewedTodayCount(entries map[string]*models.WordEntry, today string) int {
	count := 0
	for _, e := range entries {
		if !e.Mastered() && e.ReviewedToday(today) {
			count++
		}
	}
	return count
}

// RecordOutcome applies a review result to an entry in place.
//
// On success, today is appended to the history unless it is already the most
// recent date, so recording a success twice on the same day is a no-op and
// the streak grows by at most one per day.
//
// On failure, the whole history is cleared regardless of prior state. A
// failure after an earlier same-day success still erases that day's credit;
// failure always costs the full streak.
func RecordOutcome(e *models.WordEntry, today string, correct bool) {
	if correct {
		if !e.ReviewedToday(today) {
			e.History = append(e.History, today)
		}
		return
	}
	e.History = nil
}

// Partition splits the entries into the due list (everything not mastered,
// sorted with today's finished words last, then case-insensitively by word)
// and the mastered list (sorted case-insensitively by word). Pure read used
// by the list command.
func Partition(entries map[string]*models.WordEntry, today string) (due, mastered []*models.WordEntry) {
	for _, e := range entries {
		if e.Mastered() {
			mastered = append(mastered, e)
		} else {
			due = append(due, e)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		ri, rj := due[i].ReviewedToday(today), due[j].ReviewedToday(today)
		if ri != rj {
			return !ri
		}
		return strings.ToLower(due[i].Word) < strings.ToLower(due[j].Word)
	})
	sort.Slice(mastered, func(i, j int) bool {
		return strings.ToLower(mastered[i].Word) < strings.ToLower(mastered[j].Word)
	})

	return due, mastered
}
