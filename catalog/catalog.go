// Package catalog implements the in-memory product query layer: search,
// category filtering, sorting and pagination over a wholesale-fetched list.
package catalog

import (
	"sort"
	"strings"

	"antojos/models"
	"antojos/pricing"
	"antojos/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of products per page.
const PageSize = 20

// Sort modes selectable by the client.
const (
	SortDefault  = "default"
	SortDiscount = "discount"
	SortPrice    = "price"
	SortName     = "name"
)

var nameCollator = collate.New(language.Spanish, collate.IgnoreCase)

// Search matches query against nombre, categoria and descripcion, case and
// diacritic insensitive. Exact field matches rank before substring matches;
// there is no further relevance ranking. An empty query returns the input
// unchanged.
func Search(products []models.Product, query string) []models.Product {
	q := utils.Normalize(query)
	if q == "" {
		return products
	}

	var exact, partial []models.Product
	for _, p := range products {
		fields := []string{
			utils.Normalize(p.Nombre),
			utils.Normalize(p.Categoria),
			utils.Normalize(p.Descripcion),
		}
		if matchEqual(fields, q) {
			exact = append(exact, p)
		} else if matchContains(fields, q) {
			partial = append(partial, p)
		}
	}
	return append(exact, partial...)
}

func matchEqual(fields []string, q string) bool {
	for _, f := range fields {
		if f == q {
			return true
		}
	}
	return false
}

func matchContains(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}

// FilterCategory keeps products whose category equals the given one,
// diacritic and case insensitive. An empty category keeps everything.
func FilterCategory(products []models.Product, category string) []models.Product {
	c := utils.Normalize(category)
	if c == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if utils.Normalize(p.Categoria) == c {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts reorders a copy of the list according to mode. Unknown modes
// behave like SortDefault and leave the order untouched.
func SortProducts(products []models.Product, mode string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch mode {
	case SortDiscount:
		sort.SliceStable(out, func(i, j int) bool {
			di := pricing.DiscountPercent(out[i].PrecioOriginal, out[i].PrecioFinal)
			dj := pricing.DiscountPercent(out[j].PrecioOriginal, out[j].PrecioFinal)
			return di > dj
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PrecioFinal < out[j].PrecioFinal
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Nombre, out[j].Nombre) < 0
		})
	}
	return out
}

// Paginate returns the 1-based page of an already filtered and sorted list.
// Pages past the end come back empty; page values below 1 are treated as 1,
// which is also where the caller resets to whenever filters change.
func Paginate(products []models.Product, page int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// TotalPages reports how many pages the list spans.
func TotalPages(products []models.Product) int {
	return (len(products) + PageSize - 1) / PageSize
}
