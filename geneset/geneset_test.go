package geneset

import (
	"strings"
	"testing"
)

func TestGeneSetCollapsesDuplicates(t *testing.T) {
	g := New("S", "a", "b", "a")
	if g.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", g.Len())
	}
	if !g.Contains("a") || g.Contains("c") {
		t.Fatal("membership mismatch")
	}
	if m := g.Members(); m[0] != "a" || m[1] != "b" {
		t.Fatalf("Members should be sorted, got %v", m)
	}
}

func TestCollectionRejectsDuplicateNames(t *testing.T) {
	_, err := NewCollection(New("A", "x"), New("A", "y"))
	if err == nil {
		t.Fatal("expected an error for a duplicate set name")
	}

	_, err = NewCollection(New("", "x"))
	if err == nil {
		t.Fatal("expected an error for an unnamed set")
	}
}

func TestCollectionLookup(t *testing.T) {
	c, err := NewCollection(New("A", "x"), New("B", "y", "z"))
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 || c.At(1).Name != "B" {
		t.Fatalf("unexpected collection: %v", c.Names())
	}

	b, ok := c.Get("B")
	if !ok || b.Len() != 2 {
		t.Fatalf("Get(B) = %+v, %v", b, ok)
	}

	if _, ok := c.Get("C"); ok {
		t.Fatal("C should not exist")
	}
}

func TestReadGMT(t *testing.T) {
	in := "# MSigDB export\n" +
		"HALLMARK_HYPOXIA\thttp://example.org/hypoxia\tVEGFA\tHK2\tPGK1\n" +
		"\n" +
		"KEGG_GLYCOLYSIS\tna\tHK2\tPKM\tHK2\t\n"

	c, err := ReadGMT(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 sets, got %d", c.Len())
	}

	hypoxia := c.At(0)
	if hypoxia.Name != "HALLMARK_HYPOXIA" || hypoxia.Description != "http://example.org/hypoxia" || hypoxia.Len() != 3 {
		t.Fatalf("Mismatch: %+v", hypoxia)
	}

	glycolysis, _ := c.Get("KEGG_GLYCOLYSIS")
	if glycolysis.Len() != 2 {
		t.Fatalf("duplicate and blank genes should be dropped, got %v", glycolysis.Members())
	}
}

func TestReadGMTErrors(t *testing.T) {
	for _, in := range []string{
		"ONLYNAME\n",
		"A\tdesc\tg1\nA\tdesc\tg2\n",
	} {
		if _, err := ReadGMT(strings.NewReader(in)); err == nil {
			t.Fatalf("expected an error for %q", in)
		}
	}
}
