package vtstate

import "testing"

func TestKittyKeyboardStackStartsWithOneFrame(t *testing.T) {
	k := NewKittyKeyboardStack()
	if k.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", k.Depth())
	}
	if k.Top() != 0 {
		t.Fatalf("Top() = %d, want 0", k.Top())
	}
}

func TestKittyKeyboardPushPop(t *testing.T) {
	k := NewKittyKeyboardStack()
	k.Push(KittyReportEventTypes)
	k.Push(KittyReportAlternateKeys)
	if k.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", k.Depth())
	}
	if k.Top() != KittyReportAlternateKeys {
		t.Fatalf("Top() = %d, want %d", k.Top(), KittyReportAlternateKeys)
	}

	k.Pop(2)
	if k.Depth() != 1 {
		t.Fatalf("Depth() after Pop(2) = %d, want 1", k.Depth())
	}
	if k.Top() != 0 {
		t.Fatalf("Top() after popping to base = %d, want 0", k.Top())
	}
}

func TestKittyKeyboardPopNeverEmptiesStack(t *testing.T) {
	k := NewKittyKeyboardStack()
	k.Pop(10)
	if k.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 (Pop must leave at least one frame)", k.Depth())
	}
}

func TestKittyKeyboardSetOps(t *testing.T) {
	k := NewKittyKeyboardStack()

	k.SetTop(KittyOpSet, KittyDisambiguateEscapeCodes|KittyReportEventTypes)
	if k.Top() != KittyDisambiguateEscapeCodes|KittyReportEventTypes {
		t.Fatalf("SetTop(Set) = %d", k.Top())
	}

	k.SetTop(KittyOpOr, KittyReportAssociatedText)
	want := KittyDisambiguateEscapeCodes | KittyReportEventTypes | KittyReportAssociatedText
	if k.Top() != want {
		t.Fatalf("SetTop(Or) = %d, want %d", k.Top(), want)
	}

	k.SetTop(KittyOpNot, KittyReportEventTypes)
	want = KittyDisambiguateEscapeCodes | KittyReportAssociatedText
	if k.Top() != want {
		t.Fatalf("SetTop(Not) = %d, want %d", k.Top(), want)
	}
}
