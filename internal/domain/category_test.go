package domain

import (
	"reflect"
	"testing"
)

var testCatalog = []Category{
	{ID: "c1", Name: "Computer Science"},
	{ID: "c2", Name: "Physics"},
	{ID: "c3", Name: "Environmental Science"},
}

func TestCategoryNames(t *testing.T) {
	got := CategoryNames(testCatalog)
	want := []string{"Computer Science", "Physics", "Environmental Science"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryNames = %v, want %v", got, want)
	}
	if CategoryNames(nil) != nil {
		t.Error("CategoryNames(nil) should be nil")
	}
}

func TestResolveCategoryIDs(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"catalog order preserved", []string{"Physics", "Computer Science"}, []string{"c1", "c2"}},
		{"case insensitive", []string{"physics", "ENVIRONMENTAL science"}, []string{"c2", "c3"}},
		{"unknown names skipped", []string{"Alchemy", "Physics"}, []string{"c2"}},
		{"no names", nil, nil},
		{"nothing resolvable", []string{"Alchemy"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCategoryIDs(tt.names, testCatalog)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveCategoryIDs(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}

	if got := ResolveCategoryIDs([]string{"Physics"}, nil); got != nil {
		t.Errorf("empty catalog should resolve nothing, got %v", got)
	}
}
