package memory

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/bft-labs/journal/internal/domain"
)

func TestWriter_SaveAndReplace(t *testing.T) {
	g := NewWithT(t)
	w := NewWriter()
	c := domain.NewCounter(1)

	r := domain.NewRecord("Dear Diary", c)
	r.AddEntry("I ate a bug")
	r.AddEntry("I cried today")
	g.Expect(w.Save(context.Background(), r, "diary.txt")).To(Succeed())

	lines, ok := w.Lines("diary.txt")
	g.Expect(ok).To(BeTrue())
	g.Expect(lines).To(Equal([]string{"1: I ate a bug", "2: I cried today"}))

	other := domain.NewRecord("Other", c)
	other.AddEntry("later")
	g.Expect(w.Save(context.Background(), other, "diary.txt")).To(Succeed())

	lines, _ = w.Lines("diary.txt")
	g.Expect(lines).To(Equal([]string{"3: later"}))
}

func TestWriter_EmptyRecord(t *testing.T) {
	g := NewWithT(t)
	w := NewWriter()

	g.Expect(w.Save(context.Background(), domain.NewRecord("Empty", domain.NewCounter(1)), "empty")).To(Succeed())

	lines, ok := w.Lines("empty")
	g.Expect(ok).To(BeTrue())
	g.Expect(lines).To(BeEmpty())
}

func TestWriter_Destinations(t *testing.T) {
	g := NewWithT(t)
	w := NewWriter()
	r := domain.NewRecord("x", domain.NewCounter(1))

	g.Expect(w.Save(context.Background(), r, "b")).To(Succeed())
	g.Expect(w.Save(context.Background(), r, "a")).To(Succeed())

	g.Expect(w.Destinations()).To(Equal([]string{"a", "b"}))

	_, ok := w.Lines("missing")
	g.Expect(ok).To(BeFalse())
}

func TestWriter_EmptyDestination(t *testing.T) {
	err := NewWriter().Save(context.Background(), domain.NewRecord("x", domain.NewCounter(1)), "")
	if !errors.Is(err, domain.ErrEmptyDestination) {
		t.Errorf("Save() error = %v, want ErrEmptyDestination", err)
	}
}
