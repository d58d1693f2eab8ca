package synonym

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitySynonyms_NoEmptyLists(t *testing.T) {
	m := EntitySynonyms()
	require.NotEmpty(t, m)
	for term, syns := range m {
		assert.NotEmpty(t, term)
		assert.NotNil(t, syns, "term %q", term)
		assert.NotEmpty(t, syns, "term %q", term)
		for _, s := range syns {
			assert.NotEmpty(t, s, "blank synonym under %q", term)
		}
	}
}

func TestEntitySynonyms_SpotChecks(t *testing.T) {
	m := EntitySynonyms()

	tests := []struct {
		term string
		want []string
	}{
		{term: "Product", want: []string{"sản phẩm", "drink"}},
		{term: "HAS_CATEGORIE", want: []string{"thuộc danh mục"}},
		{term: "Caffè Latte", want: []string{"latte"}},
		{term: "caffeine_mg", want: []string{"caffeine"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			syns, ok := m[tt.term]
			require.True(t, ok)
			for _, w := range tt.want {
				assert.Contains(t, syns, w)
			}
		})
	}
}

func TestEntitySynonyms_SizeCollisionLastDefinitionWins(t *testing.T) {
	m := EntitySynonyms()

	var optionSizes, variantSizes map[string][]string
	for _, g := range authoredGroups() {
		switch g.Name {
		case GroupBeverageOptionSizes:
			optionSizes = entriesOf(g)
		case GroupVariantSizes:
			variantSizes = entriesOf(g)
		}
	}
	require.Len(t, optionSizes, 4)
	require.Len(t, variantSizes, 4)

	for _, size := range []string{"Short", "Tall", "Grande", "Venti"} {
		got, ok := m[size]
		require.True(t, ok, size)
		assert.Equal(t, optionSizes[size], got, "%s keeps the Beverage Options - Sizes list", size)
		assert.NotEqual(t, variantSizes[size], got, "%s must not keep the Variants/Sizes list", size)
	}

	assert.Equal(t, []string{"ly grande", "16 oz", "16oz", "473 ml", "ly vừa", "grande size"}, m["Grande"])
	assert.NotContains(t, m["Grande"], "medium")

	g, ok := Default().Group("Venti")
	require.True(t, ok)
	assert.Equal(t, GroupBeverageOptionSizes, g)
}

func TestDefault_Collisions(t *testing.T) {
	cols := Default().Collisions()
	require.Len(t, cols, 4)

	got := map[string]Collision{}
	for _, c := range cols {
		got[c.Term] = c
	}
	for _, size := range []string{"Short", "Tall", "Grande", "Venti"} {
		c, ok := got[size]
		require.True(t, ok, size)
		assert.Equal(t, GroupVariantSizes, c.Replaced)
		assert.Equal(t, GroupBeverageOptionSizes, c.Winner)
	}
}

func TestDefault_CountMatchesDistinctTerms(t *testing.T) {
	tbl := Default()

	raw := 0
	distinct := map[string]struct{}{}
	for _, g := range authoredGroups() {
		for _, e := range g.Entries {
			raw++
			distinct[e.Term] = struct{}{}
		}
	}

	assert.Equal(t, raw, tbl.RawCount())
	assert.Equal(t, len(distinct), tbl.Len())
	assert.Equal(t, tbl.RawCount()-4, tbl.Len())
	assert.Len(t, EntitySynonyms(), tbl.Len())
}

func TestEntitySynonyms_Deterministic(t *testing.T) {
	a := EntitySynonyms()
	b := EntitySynonyms()
	assert.Equal(t, a, b)

	rebuilt := Build(authoredGroups())
	assert.Equal(t, a, rebuilt.Map())
	assert.Equal(t, Default().Fingerprint(), rebuilt.Fingerprint())
}

func TestEntitySynonyms_ReturnsIndependentCopies(t *testing.T) {
	a := EntitySynonyms()
	a["Product"][0] = "mutated"
	delete(a, "Category")
	a["Bogus"] = []string{"x"}

	b := EntitySynonyms()
	assert.Equal(t, "sản phẩm", b["Product"][0])
	assert.Contains(t, b, "Category")
	assert.NotContains(t, b, "Bogus")

	syns, ok := Default().Lookup("Product")
	require.True(t, ok)
	syns[0] = "mutated"
	again, _ := Default().Lookup("Product")
	assert.Equal(t, "sản phẩm", again[0])
}

func TestEntitySynonyms_ConcurrentAccess(t *testing.T) {
	want := Default().Fingerprint()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := EntitySynonyms()
			assert.Len(t, m, Default().Len())
			assert.Equal(t, want, Default().Fingerprint())
		}()
	}
	wg.Wait()
}

func TestTable_Kinds(t *testing.T) {
	tbl := Default()

	tests := []struct {
		term string
		want Kind
	}{
		{term: "Product", want: KindLabel},
		{term: "HAS_PRODUCT", want: KindRelationship},
		{term: "price", want: KindProperty},
		{term: "Oat Milk", want: KindValue},
		{term: "Grande", want: KindValue},
		{term: "Espresso", want: KindProduct},
	}
	for _, tt := range tests {
		got, ok := tbl.Kind(tt.term)
		require.True(t, ok, tt.term)
		assert.Equal(t, tt.want, got, tt.term)
	}

	_, ok := tbl.Kind("Nope")
	assert.False(t, ok)

	rels := tbl.TermsByKind(KindRelationship)
	assert.Contains(t, rels, "HAS_CATEGORIE")
	for _, r := range rels {
		k, _ := tbl.Kind(r)
		assert.Equal(t, KindRelationship, k)
	}

	total := 0
	for _, k := range []Kind{KindLabel, KindRelationship, KindProperty, KindValue, KindProduct} {
		assert.True(t, k.Valid())
		total += len(tbl.TermsByKind(k))
	}
	assert.Equal(t, tbl.Len(), total)
	assert.False(t, Kind("widget").Valid())
}

func TestTable_TermsSorted(t *testing.T) {
	terms := Default().Terms()
	require.Len(t, terms, Default().Len())
	assert.IsIncreasing(t, terms)
}

func TestBuild_Fingerprint(t *testing.T) {
	base := []Group{{Name: "a", Kind: KindValue, Entries: []Entry{{Term: "X", Synonyms: []string{"x"}}}}}
	changed := []Group{{Name: "a", Kind: KindValue, Entries: []Entry{{Term: "X", Synonyms: []string{"x", "ex"}}}}}
	rekinded := []Group{{Name: "a", Kind: KindProduct, Entries: []Entry{{Term: "X", Synonyms: []string{"x"}}}}}
	regrouped := []Group{{Name: "b", Kind: KindValue, Entries: []Entry{{Term: "X", Synonyms: []string{"x"}}}}}

	fp := Build(base).Fingerprint()
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Build(base).Fingerprint())
	assert.NotEqual(t, fp, Build(changed).Fingerprint())
	assert.NotEqual(t, fp, Build(rekinded).Fingerprint())
	assert.NotEqual(t, fp, Build(regrouped).Fingerprint())
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	syns := []string{"one", "two"}
	tbl := Build([]Group{{Name: "g", Kind: KindValue, Entries: []Entry{{Term: "T", Synonyms: syns}}}})
	syns[0] = "changed"

	got, ok := tbl.Lookup("T")
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two"}, got)
	assert.Equal(t, []string{"g"}, tbl.Groups())
	assert.Empty(t, tbl.Collisions())
}

func entriesOf(g Group) map[string][]string {
	out := make(map[string][]string, len(g.Entries))
	for _, e := range g.Entries {
		out[e.Term] = e.Synonyms
	}
	return out
}
