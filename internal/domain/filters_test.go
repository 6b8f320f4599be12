package domain

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ParsedFilters
		want ParsedFilters
	}{
		{
			name: "categories suppress query",
			in:   ParsedFilters{Query: "leftover", Categories: []string{"Physics"}, Year: 2021},
			want: ParsedFilters{Categories: []string{"Physics"}, Year: 2021},
		},
		{
			name: "blank fields become unset",
			in:   ParsedFilters{Query: "   ", Author: "  "},
			want: ParsedFilters{},
		},
		{
			name: "empty category list becomes nil",
			in:   ParsedFilters{Query: "quantum", Categories: []string{}},
			want: ParsedFilters{Query: "quantum"},
		},
		{
			name: "blank category entries dropped",
			in:   ParsedFilters{Categories: []string{" ", "Physics", ""}},
			want: ParsedFilters{Categories: []string{"Physics"}},
		},
		{
			name: "author whitespace collapsed",
			in:   ParsedFilters{Author: "  John   Smith  "},
			want: ParsedFilters{Author: "John Smith"},
		},
		{
			name: "implausible year cleared",
			in:   ParsedFilters{Year: 123},
			want: ParsedFilters{},
		},
		{
			name: "year and author survive suppression",
			in:   ParsedFilters{Query: "noise", Categories: []string{"Biology"}, Year: 1999, Author: "M. Chen"},
			want: ParsedFilters{Categories: []string{"Biology"}, Year: 1999, Author: "M. Chen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize:\ngot:  %+v\nwant: %+v", got, tt.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	if !(ParsedFilters{}).Empty() {
		t.Error("zero filters should be empty")
	}
	for _, f := range []ParsedFilters{
		{Query: "q"},
		{Categories: []string{"Physics"}},
		{Year: 2020},
		{Author: "Ada"},
	} {
		if f.Empty() {
			t.Errorf("%+v should not be empty", f)
		}
	}
}
