package model

import (
	"fmt"
	"strings"
)

// Category narrows which projects the API returns.
type Category string

const (
	CategoryAll        Category = "ALL"
	CategoryStatic     Category = "STATIC"
	CategoryResponsive Category = "RESPONSIVE"
	CategoryDynamic    Category = "DYNAMIC"
	CategoryReact      Category = "REACT"

	DefaultCategory = CategoryAll
)

var categories = []Category{
	CategoryAll,
	CategoryStatic,
	CategoryResponsive,
	CategoryDynamic,
	CategoryReact,
}

var labels = map[Category]string{
	CategoryAll:        "All",
	CategoryStatic:     "Static",
	CategoryResponsive: "Responsive",
	CategoryDynamic:    "Dynamic",
	CategoryReact:      "React",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory accepts a category id in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := labels[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func (c Category) String() string { return string(c) }

// Label is the human readable name shown in selectors.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Index is the position in display order, or -1 for an unknown category.
func (c Category) Index() int {
	for i, x := range categories {
		if x == c {
			return i
		}
	}
	return -1
}

// Next and Prev cycle through the categories, wrapping at both ends.
func (c Category) Next() Category { return c.shift(1) }
func (c Category) Prev() Category { return c.shift(-1) }

func (c Category) shift(d int) Category {
	i := c.Index()
	if i < 0 {
		return DefaultCategory
	}
	n := len(categories)
	return categories[((i+d)%n+n)%n]
}
