package catalog

import (
	"testing"

	"antojos/models"
)

func sample() []models.Product {
	label := "Popular"
	return []models.Product{
		{ID: 1, Nombre: "Arepa de Queso", Categoria: "Fritos", Descripcion: "Arepa rellena", PrecioOriginal: 8000, PrecioFinal: 8000},
		{ID: 2, Nombre: "Empanada", Categoria: "Fritos", Descripcion: "Empanada de carne", PrecioOriginal: 3000, PrecioFinal: 2000},
		{ID: 3, Nombre: "Jugo de Maracuyá", Categoria: "Bebidas", Descripcion: "Jugo natural", PrecioOriginal: 6000, PrecioFinal: 6000, Etiqueta: &label},
		{ID: 4, Nombre: "Café", Categoria: "Bebidas", Descripcion: "Café campesino", PrecioOriginal: 4000, PrecioFinal: 3000},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchExactBeforePartial(t *testing.T) {
	// "cafe" matches product 4 exactly (diacritic-insensitive) and
	// product 4's description as substring; exact match must come first
	// and the product must not be duplicated.
	got := Search(sample(), "café")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("Search(café) = %v, want only product 4", ids(got))
	}

	// "jugo" is a substring of nombre and descripcion of product 3.
	got = Search(sample(), "JUGO")
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("Search(JUGO) = %v, want product 3", ids(got))
	}

	// Exact category match ranks those products before substring hits.
	got = Search(sample(), "fritos")
	if !equalIDs(ids(got), []int{1, 2}) {
		t.Fatalf("Search(fritos) = %v, want [1 2]", ids(got))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	got := Search(sample(), "   ")
	if len(got) != 4 {
		t.Fatalf("blank query should return everything, got %v", ids(got))
	}
}

func TestFilterCategoryDiacriticInsensitive(t *testing.T) {
	got := FilterCategory(sample(), "BEBIDAS")
	if !equalIDs(ids(got), []int{3, 4}) {
		t.Fatalf("FilterCategory(BEBIDAS) = %v, want [3 4]", ids(got))
	}
	if got := FilterCategory(sample(), ""); len(got) != 4 {
		t.Fatalf("empty category should keep everything, got %v", ids(got))
	}
	if got := FilterCategory(sample(), "Postres"); len(got) != 0 {
		t.Fatalf("unknown category should match nothing, got %v", ids(got))
	}
}

func TestSortModes(t *testing.T) {
	products := sample()

	got := SortProducts(products, SortDefault)
	if !equalIDs(ids(got), []int{1, 2, 3, 4}) {
		t.Errorf("default sort reordered: %v", ids(got))
	}

	// Discounts: p2 = 33%, p4 = 25%, p1 = p3 = 0%.
	got = SortProducts(products, SortDiscount)
	if !equalIDs(ids(got), []int{2, 4, 1, 3}) {
		t.Errorf("discount sort = %v, want [2 4 1 3]", ids(got))
	}

	got = SortProducts(products, SortPrice)
	if !equalIDs(ids(got), []int{2, 4, 3, 1}) {
		t.Errorf("price sort = %v, want [2 4 3 1]", ids(got))
	}

	got = SortProducts(products, SortName)
	if !equalIDs(ids(got), []int{1, 4, 2, 3}) {
		t.Errorf("name sort = %v, want [1 4 2 3]", ids(got))
	}

	// The input slice stays untouched.
	if !equalIDs(ids(products), []int{1, 2, 3, 4}) {
		t.Errorf("SortProducts mutated its input: %v", ids(products))
	}
}

func TestPaginate(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 45; i++ {
		products = append(products, models.Product{ID: i})
	}

	page1 := Paginate(products, 1)
	if len(page1) != PageSize || page1[0].ID != 1 || page1[19].ID != 20 {
		t.Fatalf("page 1 wrong: len=%d", len(page1))
	}
	page3 := Paginate(products, 3)
	if len(page3) != 5 || page3[0].ID != 41 {
		t.Fatalf("page 3 wrong: len=%d", len(page3))
	}
	if got := Paginate(products, 4); len(got) != 0 {
		t.Fatalf("page past end should be empty, got %d items", len(got))
	}
	if got := Paginate(products, 0); len(got) != PageSize {
		t.Fatalf("page below 1 should clamp to first page, got %d items", len(got))
	}
	if got := TotalPages(products); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}
}
