package export

import (
	"testing"

	"github.com/crestwood/memomd/internal/memos"
)

func TestFilestemUsesName(t *testing.T) {
	memo := memos.Memo{ID: 7, Name: "weekly-review"}

	if got := Filestem(memo); got != "weekly-review" {
		t.Errorf("expected weekly-review, got %s", got)
	}
}

func TestFilestemFallsBackToID(t *testing.T) {
	memo := memos.Memo{ID: 7}

	if got := Filestem(memo); got != "7" {
		t.Errorf("expected 7, got %s", got)
	}
}

func TestFilestemSanitizesSeparators(t *testing.T) {
	memo := memos.Memo{ID: 7, Name: `notes/2024\jan`}

	if got := Filestem(memo); got != "notes-2024-jan" {
		t.Errorf("expected notes-2024-jan, got %s", got)
	}
}

func TestFilestemDropsControlCharacters(t *testing.T) {
	memo := memos.Memo{ID: 7, Name: "be\x00fore\tafter"}

	if got := Filestem(memo); got != "beforeafter" {
		t.Errorf("expected beforeafter, got %s", got)
	}
}

func TestFilestemNormalizesToNFC(t *testing.T) {
	// "Cafe" + combining acute accent, as sent by NFD-producing clients.
	memo := memos.Memo{ID: 7, Name: "Cafe\u0301"}

	if got := Filestem(memo); got != "Caf\u00e9" {
		t.Errorf("expected precomposed form, got %q", got)
	}
}

func TestFilestemEmptyAfterSanitizing(t *testing.T) {
	memo := memos.Memo{ID: 7, Name: " .. "}

	if got := Filestem(memo); got != "7" {
		t.Errorf("expected fallback to id, got %s", got)
	}
}
